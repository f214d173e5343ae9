package metadata

import (
	"fmt"
	"strconv"

	"github.com/feral-file/ff-goblet/internal/domain"
)

// Document is an ERC-721/1155 metadata document
type Document struct {
	ID                   string      `json:"id"`
	Description          string      `json:"description"`
	ExternalURL          string      `json:"external_url"`
	SellerFeeBasisPoints int         `json:"seller_fee_basis_points"`
	Image                string      `json:"image"`
	Name                 string      `json:"name"`
	Attributes           []Attribute `json:"attributes"`
}

// Attribute is a marketplace trait
type Attribute struct {
	TraitType   string `json:"trait_type"`
	Value       any    `json:"value"`
	DisplayType string `json:"display_type,omitempty"`
	MaxValue    *int   `json:"max_value,omitempty"`
}

// GobletTemplate holds the fixed fields of goblet documents
type GobletTemplate struct {
	Description          string
	ExternalURL          string
	ImageCID             string
	SellerFeeBasisPoints int
}

// GemstoneTemplate holds the fixed fields of gemstone documents
type GemstoneTemplate struct {
	ExternalURL          string
	ImageCID             string
	SellerFeeBasisPoints int
}

// GobletDocument builds the document served at domain.GobletURI for a goblet id
func GobletDocument(tpl GobletTemplate, tokenID uint64) Document {
	year := domain.GobletCalendarYear(tokenID)
	edition := int((tokenID-1)%domain.GOBLETS_PER_YEAR) + 1
	maxEdition := domain.GOBLETS_PER_YEAR

	return Document{
		ID:                   strconv.FormatUint(tokenID, 10),
		Description:          tpl.Description,
		ExternalURL:          tpl.ExternalURL,
		SellerFeeBasisPoints: tpl.SellerFeeBasisPoints,
		Image:                fmt.Sprintf("ipfs://%s/%d.jpg", tpl.ImageCID, year),
		Name:                 fmt.Sprintf("Goblet #%d", tokenID),
		Attributes: []Attribute{
			{TraitType: "Limited Edition", Value: edition, DisplayType: "number", MaxValue: &maxEdition},
			{TraitType: "Year", Value: strconv.Itoa(year)},
			{TraitType: "Type", Value: "Goblet"},
		},
	}
}

// GemstoneDocument builds the document served at domain.GemstoneURI for a gemstone id.
// The redeemed and unredeemed sets differ only in the IsRedeemed trait.
func GemstoneDocument(tpl GemstoneTemplate, tokenID uint64, redeemed bool) (Document, error) {
	gemType, ok := domain.GemTypeOf(tokenID)
	if !ok {
		return Document{}, fmt.Errorf("%w: %d", domain.ErrUnknownToken, tokenID)
	}
	number := tokenID - gemType.FirstTokenID() + 1

	return Document{
		ID: strconv.FormatUint(tokenID, 10),
		Description: fmt.Sprintf("%s #%d is a token minted on purchase of a case. "+
			"Collect all 6 tokens to be eligible to get the Goblet", gemType, number),
		ExternalURL:          tpl.ExternalURL,
		SellerFeeBasisPoints: tpl.SellerFeeBasisPoints,
		Image:                fmt.Sprintf("ipfs://%s/%d.svg", tpl.ImageCID, tokenID),
		Name:                 fmt.Sprintf("MultiGrain & Cane Whiskey %s #%d", gemType, number),
		Attributes: []Attribute{
			{TraitType: "IsRedeemed", Value: strconv.FormatBool(redeemed)},
			{TraitType: "Gem", Value: gemType.String()},
		},
	}, nil
}
