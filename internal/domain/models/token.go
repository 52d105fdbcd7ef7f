package models

// BaseToken is the nested token descriptor both upstream feeds may embed.
type BaseToken struct {
	Address string `json:"address,omitempty"`
	Name    string `json:"name,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
	Icon    string `json:"icon,omitempty"`
}

// TokenProfile is one entry of the trending-profile feed. The provider does
// not commit to a schema: name, symbol and logo may arrive under any of
// several keys, so all known aliases are kept and resolved downstream.
type TokenProfile struct {
	URL          string `json:"url,omitempty"`
	ChainID      string `json:"chainId"`
	TokenAddress string `json:"tokenAddress"`
	Description  string `json:"description,omitempty"`

	Name            string     `json:"name,omitempty"`
	TokenName       string     `json:"tokenName,omitempty"`
	BaseTokenName   string     `json:"baseTokenName,omitempty"`
	Symbol          string     `json:"symbol,omitempty"`
	TokenSymbol     string     `json:"tokenSymbol,omitempty"`
	BaseTokenSymbol string     `json:"baseTokenSymbol,omitempty"`
	Icon            string     `json:"icon,omitempty"`
	LogoURI         string     `json:"logoURI,omitempty"`
	Logo            string     `json:"logo,omitempty"`
	BaseToken       *BaseToken `json:"baseToken,omitempty"`
}

// TokenVolume carries the windowed trading volumes of a market entry.
// Only the 24h window is used; it stays a pointer so that an absent value
// is distinguishable from zero.
type TokenVolume struct {
	H24 *float64 `json:"h24,omitempty"`
}

// TokenMarket is one entry of the batch market-data feed.
type TokenMarket struct {
	Address string      `json:"address"`
	Name    string      `json:"name,omitempty"`
	Symbol  string      `json:"symbol,omitempty"`
	Icon    string      `json:"icon,omitempty"`
	Volume  TokenVolume `json:"volume"`
	Price   *float64    `json:"price,omitempty"`
	FDV     *float64    `json:"fdv,omitempty"`

	BaseToken *BaseToken `json:"baseToken,omitempty"`
}

// Volume24h returns the 24h volume, defaulting to 0 when absent.
func (m *TokenMarket) Volume24h() float64 {
	if m.Volume.H24 == nil {
		return 0
	}
	return *m.Volume.H24
}

// TokenRecord is the canonical per-token output record. Absent upstream
// fields stay empty or null; placeholder substitution belongs to the
// presentation layer.
type TokenRecord struct {
	Address   string   `json:"address"`
	Name      string   `json:"name"`
	Symbol    string   `json:"symbol"`
	LogoURI   string   `json:"logoURI"`
	Volume24h float64  `json:"volume24h"`
	Votes     int      `json:"votes"`
	Price     *float64 `json:"price"`
	MarketCap *float64 `json:"marketcap"`
}
