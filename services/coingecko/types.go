package coingecko

import (
	"crypto-snapshot/pkg/observer"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	coingeckoBaseAPI      = "https://api.coingecko.com"
	marketCapDescSort     = "market_cap_desc"
	clientHTTPTimeout     = 15 * time.Second
	marketsCacheKeyFormat = "markets-%s-%d-%d"
)

// Coin is one market snapshot row as returned by /api/v3/coins/markets.
// Numeric market fields are pointers so a JSON null survives the decode
// instead of collapsing into a zero value.
type Coin struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	Image                    string   `json:"image,omitempty"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            int      `json:"market_cap_rank,omitempty"`
	TotalVolume              *float64 `json:"total_volume"`
	High24H                  *float64 `json:"high_24h,omitempty"`
	Low24H                   *float64 `json:"low_24h,omitempty"`
	PriceChange24H           *float64 `json:"price_change_24h,omitempty"`
	PriceChangePercentage24H *float64 `json:"price_change_percentage_24h,omitempty"`
	CirculatingSupply        *float64 `json:"circulating_supply,omitempty"`
	TotalSupply              *float64 `json:"total_supply,omitempty"`
	Ath                      *float64 `json:"ath,omitempty"`
	Atl                      *float64 `json:"atl,omitempty"`
	LastUpdated              string   `json:"last_updated,omitempty"`
}

type Service interface {
	FetchMarkets(vsCurrency string, perPage int, page int) ([]Coin, error)
	LatestMarkets() ([]Coin, bool)
	RegisterObserver(o observer.Observer)
}

type Impl struct {
	baseURL        string
	client         *http.Client
	cache          *cache.Cache
	latestCacheKey string
	observers      map[observer.Observer]struct{}
}
