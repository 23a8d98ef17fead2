package entities

type Snapshot struct {
	CoinID    string  `json:"coinId,omitempty" gorm:"primaryKey"`
	Day       string  `json:"day,omitempty" gorm:"primaryKey"`
	Symbol    string  `json:"symbol,omitempty"`
	Name      string  `json:"name,omitempty"`
	Rank      int     `json:"rank,omitempty"`
	Price     float64 `json:"price"`
	Marketcap float64 `json:"marketCap"`
	Volume    float64 `json:"totalVolume"`
}
