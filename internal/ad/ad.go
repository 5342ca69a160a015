package ad

// Ad is a promotional text shown by the storefront.
type Ad struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
