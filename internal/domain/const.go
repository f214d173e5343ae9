package domain

import "time"

const (
	// Gemstone constants
	GEM_TYPE_COUNT     = 6
	GEM_SLOTS_PER_TYPE = 50

	// Goblet constants
	GOBLETS_PER_YEAR          = 50
	GOBLET_MINTING_YEARS      = 3
	GOBLET_MAX_SUPPLY         = GOBLETS_PER_YEAR * GOBLET_MINTING_YEARS
	GOBLET_BASE_CALENDAR_YEAR = 2022

	// DEFAULT_GOBLET_CID is the content identifier of the published goblet metadata set
	DEFAULT_GOBLET_CID = "QmSczXio2CCNkcTwbJPmHqbPv6oSv1C1ax61ebQuWhTLFj"

	// DEFAULT_YEAR_WINDOW is the length of one goblet eligibility window
	DEFAULT_YEAR_WINDOW = 365 * 24 * time.Hour

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
)
