package coingecko

import (
	"crypto-snapshot/models/constants"
	"crypto-snapshot/pkg/observer"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() *Impl {
	service := &Impl{
		baseURL: coingeckoBaseAPI,
		client: &http.Client{
			Timeout: clientHTTPTimeout,
		},
		cache: cache.New(viper.GetDuration(constants.CoingeckoCache), 1*time.Hour),
	}

	service.observers = map[observer.Observer]struct{}{}

	return service
}

func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

func (service *Impl) notify(e observer.Event) {
	for o := range service.observers {
		o.OnNotify(e)
	}
}

func (service *Impl) FetchMarkets(vsCurrency string, perPage int, page int) ([]Coin, error) {
	cacheKey := fmt.Sprintf(marketsCacheKeyFormat, vsCurrency, perPage, page)
	if x, found := service.cache.Get(cacheKey); found {
		log.Debug().Str(constants.LogVsCurrency, vsCurrency).Msg("Serving markets from cache")
		service.latestCacheKey = cacheKey
		return x.([]Coin), nil
	}

	log.Info().Str(constants.LogVsCurrency, vsCurrency).Msg("Start fetching markets")

	url := fmt.Sprintf("%s/api/v3/coins/markets?vs_currency=%s&order=%s&per_page=%d&page=%d&sparkline=false",
		service.baseURL, vsCurrency, marketCapDescSort, perPage, page)

	resp, err := service.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var coins []Coin
	err = json.NewDecoder(resp.Body).Decode(&coins)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	service.cache.SetDefault(cacheKey, coins)
	service.latestCacheKey = cacheKey
	service.notify(observer.Event{E: observer.SnapshotEvent})
	log.Info().Int(constants.LogCoinNumber, len(coins)).Msg("End fetching markets")

	return coins, nil
}

func (service *Impl) LatestMarkets() ([]Coin, bool) {
	if service.latestCacheKey == "" {
		return nil, false
	}

	x, found := service.cache.Get(service.latestCacheKey)
	if !found {
		return nil, false
	}

	return x.([]Coin), true
}
