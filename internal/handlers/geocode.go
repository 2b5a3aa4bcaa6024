package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hospital-sales-server/internal/config"
	"hospital-sales-server/internal/utils"

	"github.com/gin-gonic/gin"
)

const kakaoAddressSearchURL = "https://dapi.kakao.com/v2/local/search/address.json"

// GeocodeHandler proxies address lookups to the Kakao local API so the
// REST API key never reaches the browser.
type GeocodeHandler struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

// NewGeocodeHandler creates a new GeocodeHandler.
func NewGeocodeHandler(cfg *config.Config) *GeocodeHandler {
	return &GeocodeHandler{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type kakaoAddressResponse struct {
	Documents []struct {
		AddressName string `json:"address_name"`
		X           string `json:"x"`
		Y           string `json:"y"`
		RoadAddress *struct {
			AddressName string `json:"address_name"`
		} `json:"road_address"`
	} `json:"documents"`
}

// GeocodeResult is the resolved coordinate pair for an address.
type GeocodeResult struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Address     string  `json:"address"`
	RoadAddress string  `json:"roadAddress,omitempty"`
}

// Geocode handles resolving a free-text address to coordinates.
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.BadRequest(c, "Address is required")
		return
	}

	if h.Cfg.KakaoRESTAPIKey == "" {
		utils.InternalServerError(c, "Kakao API key is not configured")
		return
	}

	reqURL := kakaoAddressSearchURL + "?query=" + url.QueryEscape(address)
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, reqURL, nil)
	if err != nil {
		utils.InternalServerError(c, "Failed to build address lookup request")
		return
	}
	req.Header.Set("Authorization", "KakaoAK "+h.Cfg.KakaoRESTAPIKey)

	resp, err := h.HTTPClient.Do(req)
	if err != nil {
		log.Printf("kakao address lookup failed: %v", err)
		utils.InternalServerError(c, "Address lookup failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("kakao address lookup returned status %d", resp.StatusCode)
		utils.Error(c, resp.StatusCode, "Address lookup failed")
		return
	}

	var payload kakaoAddressResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		utils.InternalServerError(c, "Failed to parse address lookup response")
		return
	}

	if len(payload.Documents) == 0 {
		utils.NotFound(c, "Address not found")
		return
	}

	doc := payload.Documents[0]
	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		utils.InternalServerError(c, "Address lookup returned invalid coordinates")
		return
	}
	lng, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		utils.InternalServerError(c, "Address lookup returned invalid coordinates")
		return
	}

	result := GeocodeResult{
		Lat:     lat,
		Lng:     lng,
		Address: doc.AddressName,
	}
	if doc.RoadAddress != nil {
		result.RoadAddress = doc.RoadAddress.AddressName
	}

	utils.Success(c, "Address resolved successfully", result)
}
