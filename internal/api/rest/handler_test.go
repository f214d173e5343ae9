package rest_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-goblet/internal/api/middleware"
	"github.com/feral-file/ff-goblet/internal/api/rest"
	"github.com/feral-file/ff-goblet/internal/api/rest/dto"
	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/goblet"
	"github.com/feral-file/ff-goblet/internal/logger"
	"github.com/feral-file/ff-goblet/internal/mocks"
	"github.com/feral-file/ff-goblet/internal/store"
	"github.com/feral-file/ff-goblet/internal/store/schema"
)

var (
	admin   = common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	holderA = common.HexToAddress("0x1111111111111111111111111111111111111111")
	holderB = common.HexToAddress("0x2222222222222222222222222222222222222222")

	signingKey *rsa.PrivateKey
	publicPEM  string
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	signingKey, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	der, err := x509.MarshalPKIXPublicKey(&signingKey.PublicKey)
	if err != nil {
		panic(err)
	}
	publicPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	code := m.Run()
	os.Exit(code)
}

type testHandler struct {
	router *gin.Engine
	ledger *mocks.MockGemstoneLedger
	minter *mocks.MockGobletMinter
	store  *mocks.MockStore
}

func setupTestHandler(t *testing.T) *testHandler {
	ctrl := gomock.NewController(t)

	th := &testHandler{
		router: gin.New(),
		ledger: mocks.NewMockGemstoneLedger(ctrl),
		minter: mocks.NewMockGobletMinter(ctrl),
		store:  mocks.NewMockStore(ctrl),
	}

	handler := rest.NewHandler(false, th.ledger, th.minter, th.store)
	rest.SetupRoutes(th.router, handler, middleware.AuthConfig{JWTPublicKey: publicPEM})

	return th
}

func bearer(t *testing.T, caller common.Address) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   caller.Hex(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(signingKey)
	require.NoError(t, err)
	return "Bearer " + token
}

// do performs a request, caller is nil for anonymous requests
func (th *testHandler) do(t *testing.T, method, path string, caller *common.Address, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if caller != nil {
		req.Header.Set("Authorization", bearer(t, *caller))
	}

	w := httptest.NewRecorder()
	th.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	body := decode[map[string]any](t, w)
	code, _ := body["code"].(string)
	return code
}

func TestHealthCheck(t *testing.T) {
	th := setupTestHandler(t)

	w := th.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetGemstone(t *testing.T) {
	t.Run("minted", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().URI(gomock.Any(), uint64(51)).Return("ipfs://QmRedeemed/"+domain.GemstoneMetadataName(51)+".json", nil)
		th.ledger.EXPECT().IsRedeemed(gomock.Any(), uint64(51)).Return(true, nil)

		w := th.do(t, http.MethodGet, "/api/v1/gemstones/51", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.GemstoneResponse](t, w)
		assert.Equal(t, uint64(51), resp.TokenID)
		assert.Equal(t, "Sapphire", resp.GemType)
		assert.True(t, resp.Redeemed)
		assert.Contains(t, resp.URI, "QmRedeemed")
	})

	t.Run("not minted yet", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().URI(gomock.Any(), uint64(2)).Return("", fmt.Errorf("%w: 2", domain.ErrUnknownToken))

		w := th.do(t, http.MethodGet, "/api/v1/gemstones/2", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "unknown_token", errorCode(t, w))
	})

	t.Run("outside the id range", func(t *testing.T) {
		th := setupTestHandler(t)

		w := th.do(t, http.MethodGet, "/api/v1/gemstones/301", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		th := setupTestHandler(t)

		w := th.do(t, http.MethodGet, "/api/v1/gemstones/abc", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdmitToWhitelist(t *testing.T) {
	tests := []struct {
		name       string
		caller     *common.Address
		body       any
		setup      func(th *testHandler)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "requires authentication",
			body:       dto.WhitelistRequest{Address: holderA.Hex(), GemType: intPtr(0)},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:   "admitted",
			caller: &admin,
			body:   dto.WhitelistRequest{Address: holderA.Hex(), GemType: intPtr(2)},
			setup: func(th *testHandler) {
				th.ledger.EXPECT().AdmitToWhitelist(gomock.Any(), admin, holderA, domain.GemEmerald).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "caller is not the administrator",
			caller: &holderB,
			body:   dto.WhitelistRequest{Address: holderA.Hex(), GemType: intPtr(0)},
			setup: func(th *testHandler) {
				th.ledger.EXPECT().AdmitToWhitelist(gomock.Any(), holderB, holderA, domain.GemAmethyst).Return(domain.ErrNotAuthorized)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "not_authorized",
		},
		{
			name:   "already admitted",
			caller: &admin,
			body:   dto.WhitelistRequest{Address: holderA.Hex(), GemType: intPtr(0)},
			setup: func(th *testHandler) {
				th.ledger.EXPECT().AdmitToWhitelist(gomock.Any(), admin, holderA, domain.GemAmethyst).Return(domain.ErrAlreadyAdmitted)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "already_admitted",
		},
		{
			name:       "unknown gem type",
			caller:     &admin,
			body:       dto.WhitelistRequest{Address: holderA.Hex(), GemType: intPtr(6)},
			wantStatus: http.StatusBadRequest,
			wantCode:   "unknown_gem_type",
		},
		{
			name:       "invalid address",
			caller:     &admin,
			body:       dto.WhitelistRequest{Address: "0x123", GemType: intPtr(0)},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_address",
		},
		{
			name:       "missing gem type",
			caller:     &admin,
			body:       map[string]string{"address": holderA.Hex()},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "validation_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := setupTestHandler(t)
			if tt.setup != nil {
				tt.setup(th)
			}

			w := th.do(t, http.MethodPost, "/api/v1/gemstones/whitelist", tt.caller, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, w))
			}
		})
	}
}

func TestMintGemstone(t *testing.T) {
	t.Run("defaults to the caller", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().MintWhitelisted(gomock.Any(), holderA, holderA, domain.GemSapphire).Return(uint64(51), nil)

		w := th.do(t, http.MethodPost, "/api/v1/gemstones/mint", &holderA, dto.MintGemstoneRequest{GemType: intPtr(1)})
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decode[dto.MintGemstoneResponse](t, w)
		assert.Equal(t, uint64(51), resp.TokenID)
		assert.Equal(t, "Sapphire", resp.GemType)
	})

	t.Run("on behalf of another address", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().MintWhitelisted(gomock.Any(), holderB, holderA, domain.GemAmethyst).Return(uint64(0), domain.ErrNotAuthorized)

		w := th.do(t, http.MethodPost, "/api/v1/gemstones/mint", &holderB,
			dto.MintGemstoneRequest{Address: holderA.Hex(), GemType: intPtr(0)})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("not whitelisted", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().MintWhitelisted(gomock.Any(), holderA, holderA, domain.GemRuby).Return(uint64(0), domain.ErrNotAdmitted)

		w := th.do(t, http.MethodPost, "/api/v1/gemstones/mint", &holderA, dto.MintGemstoneRequest{GemType: intPtr(5)})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "not_admitted", errorCode(t, w))
	})

	t.Run("slots exhausted", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().MintWhitelisted(gomock.Any(), holderA, holderA, domain.GemRuby).Return(uint64(0), domain.ErrSlotsExhausted)

		w := th.do(t, http.MethodPost, "/api/v1/gemstones/mint", &holderA, dto.MintGemstoneRequest{GemType: intPtr(5)})
		assert.Equal(t, http.StatusGone, w.Code)
	})
}

func TestTransferGemstone(t *testing.T) {
	t.Run("transferred", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().Transfer(gomock.Any(), holderA, holderA, holderB, uint64(1), uint64(1)).Return(nil)

		w := th.do(t, http.MethodPost, "/api/v1/gemstones/transfer", &holderA,
			dto.TransferRequest{To: holderB.Hex(), TokenID: 1, Amount: 1})
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().Transfer(gomock.Any(), holderA, holderA, holderB, uint64(1), uint64(2)).Return(domain.ErrInsufficientBalance)

		w := th.do(t, http.MethodPost, "/api/v1/gemstones/transfer", &holderA,
			dto.TransferRequest{To: holderB.Hex(), TokenID: 1, Amount: 2})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "insufficient_balance", errorCode(t, w))
	})

	t.Run("zero amount", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().Transfer(gomock.Any(), holderA, holderA, holderB, uint64(1), uint64(0)).Return(domain.ErrInvalidAmount)

		w := th.do(t, http.MethodPost, "/api/v1/gemstones/transfer", &holderA,
			dto.TransferRequest{To: holderB.Hex(), TokenID: 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero recipient", func(t *testing.T) {
		th := setupTestHandler(t)

		w := th.do(t, http.MethodPost, "/api/v1/gemstones/transfer", &holderA,
			dto.TransferRequest{To: domain.ETHEREUM_ZERO_ADDRESS, TokenID: 1, Amount: 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_address", errorCode(t, w))
	})
}

func TestMintGoblet(t *testing.T) {
	set := domain.EligibilitySet{1, 51, 101, 151, 201, 251}

	t.Run("minted", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().MintGoblet(gomock.Any(), holderA, holderA, th.ledger).
			Return(&goblet.MintResult{TokenID: 1, YearIndex: 0, Redeemed: set}, nil)

		w := th.do(t, http.MethodPost, "/api/v1/goblets/mint", &holderA, nil)
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decode[dto.MintGobletResponse](t, w)
		assert.Equal(t, uint64(1), resp.TokenID)
		assert.Equal(t, 2022, resp.CalendarYear)
		require.NotNil(t, resp.YearIndex)
		assert.Equal(t, 0, *resp.YearIndex)
		assert.Equal(t, []uint64{1, 51, 101, 151, 201, 251}, resp.RedeemedTokenIDs)
	})

	errorCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not eligible", fmt.Errorf("%w: %w", domain.ErrNotEligibleToMintGoblet, domain.ErrNotEligible), http.StatusUnprocessableEntity, "not_eligible_to_mint_goblet"},
		{"already minted this year", domain.ErrAlreadyMintedThisYear, http.StatusConflict, "already_minted_this_year"},
		{"minting not started", domain.ErrMintingNotStarted, http.StatusUnprocessableEntity, "minting_not_started"},
		{"out of minting window", domain.ErrOutOfMintingWindow, http.StatusGone, "out_of_minting_window"},
		{"supply exhausted", domain.ErrSupplyExhausted, http.StatusGone, "supply_exhausted"},
		{"not deployed", domain.ErrNotDeployed, http.StatusServiceUnavailable, "not_deployed"},
		{"store failure", errors.New("database is locked"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			th := setupTestHandler(t)
			th.minter.EXPECT().MintGoblet(gomock.Any(), holderA, holderA, th.ledger).Return(nil, tt.err)

			w := th.do(t, http.MethodPost, "/api/v1/goblets/mint", &holderA, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, w))
		})
	}

	t.Run("for another holder", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().MintGoblet(gomock.Any(), holderB, holderA, th.ledger).Return(nil, domain.ErrNotAuthorized)

		w := th.do(t, http.MethodPost, "/api/v1/goblets/mint", &holderB, dto.MintGobletRequest{Holder: holderA.Hex()})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestOwnerMintGoblet(t *testing.T) {
	th := setupTestHandler(t)
	th.minter.EXPECT().OwnerGobletMint(gomock.Any(), admin).Return(uint64(51), nil)

	w := th.do(t, http.MethodPost, "/api/v1/goblets/owner-mint", &admin, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decode[dto.MintGobletResponse](t, w)
	assert.Equal(t, uint64(51), resp.TokenID)
	assert.Equal(t, 2023, resp.CalendarYear)
	assert.Nil(t, resp.YearIndex)
}

func TestUpdateGobletCID(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().UpdateCID(gomock.Any(), admin, "fooBarCID").Return(nil)

		w := th.do(t, http.MethodPut, "/api/v1/goblets/cid", &admin, dto.UpdateCIDRequest{CID: "fooBarCID"})
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("blank cid", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().UpdateCID(gomock.Any(), admin, "  ").Return(domain.ErrInvalidCID)

		w := th.do(t, http.MethodPut, "/api/v1/goblets/cid", &admin, dto.UpdateCIDRequest{CID: "  "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		th := setupTestHandler(t)

		w := th.do(t, http.MethodPut, "/api/v1/goblets/cid", nil, dto.UpdateCIDRequest{CID: "fooBarCID"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetGoblet(t *testing.T) {
	th := setupTestHandler(t)
	th.minter.EXPECT().URI(gomock.Any(), uint64(101)).Return(domain.GobletURI(domain.DEFAULT_GOBLET_CID, 101), nil)
	th.minter.EXPECT().URI(gomock.Any(), uint64(102)).Return("", domain.ErrUnknownToken)

	w := th.do(t, http.MethodGet, "/api/v1/goblets/101", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.GobletResponse](t, w)
	assert.Equal(t, 2024, resp.CalendarYear)
	assert.Equal(t, "ipfs://"+domain.DEFAULT_GOBLET_CID+"/101_2024.json", resp.URI)

	w = th.do(t, http.MethodGet, "/api/v1/goblets/102", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetGobletStatus(t *testing.T) {
	t.Run("deployed", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().YearIndex(gomock.Any()).Return(1, nil)
		th.minter.EXPECT().CID(gomock.Any()).Return("fooBarCID", nil)
		th.minter.EXPECT().TotalSupply(gomock.Any()).Return(uint64(60), nil)

		w := th.do(t, http.MethodGet, "/api/v1/goblets", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.GobletStatusResponse](t, w)
		assert.Equal(t, "fooBarCID", resp.CID)
		assert.Equal(t, uint64(60), resp.TotalSupply)
		assert.Equal(t, uint64(domain.GOBLET_MAX_SUPPLY), resp.MaxSupply)
		assert.Equal(t, 1, resp.YearIndex)
		assert.True(t, resp.MintingOpen)
	})

	t.Run("window closed", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().YearIndex(gomock.Any()).Return(3, nil)
		th.minter.EXPECT().CID(gomock.Any()).Return("fooBarCID", nil)
		th.minter.EXPECT().TotalSupply(gomock.Any()).Return(uint64(10), nil)

		w := th.do(t, http.MethodGet, "/api/v1/goblets", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decode[dto.GobletStatusResponse](t, w).MintingOpen)
	})

	t.Run("before epoch", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().YearIndex(gomock.Any()).Return(-1, nil)
		th.minter.EXPECT().CID(gomock.Any()).Return("fooBarCID", nil)
		th.minter.EXPECT().TotalSupply(gomock.Any()).Return(uint64(0), nil)

		w := th.do(t, http.MethodGet, "/api/v1/goblets", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decode[dto.GobletStatusResponse](t, w).MintingOpen)
	})

	t.Run("not deployed", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().YearIndex(gomock.Any()).Return(0, domain.ErrNotDeployed)

		w := th.do(t, http.MethodGet, "/api/v1/goblets", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHoldings(t *testing.T) {
	t.Run("gemstones", func(t *testing.T) {
		th := setupTestHandler(t)
		th.ledger.EXPECT().OwnedTokenIDs(gomock.Any(), holderA).Return([]uint64{1, 51}, nil)
		th.ledger.EXPECT().BalanceOf(gomock.Any(), holderA, uint64(1)).Return(uint64(1), nil)
		th.ledger.EXPECT().BalanceOf(gomock.Any(), holderA, uint64(51)).Return(uint64(1), nil)

		w := th.do(t, http.MethodGet, "/api/v1/accounts/"+holderA.Hex()+"/gemstones", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.HoldingsResponse](t, w)
		assert.Equal(t, domain.CollectionGemstone, resp.Collection)
		assert.Equal(t, []dto.TokenBalance{{TokenID: 1, Balance: 1}, {TokenID: 51, Balance: 1}}, resp.Tokens)
	})

	t.Run("goblets", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().OwnedTokenIDs(gomock.Any(), holderA).Return(nil, nil)

		w := th.do(t, http.MethodGet, "/api/v1/accounts/"+holderA.Hex()+"/goblets", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[dto.HoldingsResponse](t, w).Tokens)
	})

	t.Run("lowercase address is accepted", func(t *testing.T) {
		th := setupTestHandler(t)
		th.minter.EXPECT().OwnedTokenIDs(gomock.Any(), admin).Return(nil, nil)

		w := th.do(t, http.MethodGet, "/api/v1/accounts/0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa/goblets", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid address", func(t *testing.T) {
		th := setupTestHandler(t)

		w := th.do(t, http.MethodGet, "/api/v1/accounts/bob/gemstones", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetEligibility(t *testing.T) {
	th := setupTestHandler(t)
	set := domain.EligibilitySet{2, 51, 101, 151, 201, 251}
	th.ledger.EXPECT().IsEligibleToMintGoblet(gomock.Any(), holderA).Return(set, true, nil)
	th.ledger.EXPECT().IsEligibleToMintGoblet(gomock.Any(), holderB).Return(domain.EligibilitySet{}, false, nil)

	w := th.do(t, http.MethodGet, "/api/v1/accounts/"+holderA.Hex()+"/eligibility", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.EligibilityResponse](t, w)
	assert.True(t, resp.Eligible)
	assert.Equal(t, set.TokenIDs(), resp.TokenIDs)

	w = th.do(t, http.MethodGet, "/api/v1/accounts/"+holderB.Hex()+"/eligibility", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[dto.EligibilityResponse](t, w)
	assert.False(t, resp.Eligible)
	assert.Empty(t, resp.TokenIDs)
}

func TestListEvents(t *testing.T) {
	t.Run("filtered", func(t *testing.T) {
		th := setupTestHandler(t)
		tokenID := uint64(1)
		th.store.EXPECT().GetLedgerEvents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter store.LedgerEventFilter) ([]*schema.LedgerEvent, error) {
				require.NotNil(t, filter.Address)
				assert.Equal(t, holderA.Hex(), *filter.Address)
				require.NotNil(t, filter.Collection)
				assert.Equal(t, domain.CollectionGoblet, *filter.Collection)
				assert.Equal(t, rest.MAX_PAGE_SIZE, filter.Limit)
				assert.Equal(t, 5, filter.Offset)

				return []*schema.LedgerEvent{{
					ID:         "01HZX",
					Collection: domain.CollectionGoblet,
					EventType:  domain.EventTypeMint,
					ToAddress:  domain.AddressPtr(holderA),
					TokenID:    &tokenID,
					Payload:    datatypes.JSON(`{"id":"01HZX"}`),
				}}, nil
			})

		w := th.do(t, http.MethodGet,
			"/api/v1/events?address=0x1111111111111111111111111111111111111111&collection=goblet&limit=500&offset=5", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.LedgerEventListResponse](t, w)
		require.Len(t, resp.Events, 1)
		assert.Equal(t, "01HZX", resp.Events[0].ID)
		assert.JSONEq(t, `{"id":"01HZX"}`, string(resp.Events[0].Payload))
	})

	t.Run("unknown collection", func(t *testing.T) {
		th := setupTestHandler(t)

		w := th.do(t, http.MethodGet, "/api/v1/events?collection=artwork", nil, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		th := setupTestHandler(t)
		th.store.EXPECT().GetLedgerEvents(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		w := th.do(t, http.MethodGet, "/api/v1/events", nil, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func intPtr(v int) *int {
	return &v
}
