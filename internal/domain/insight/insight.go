package insight

// Insight é um cartão explicativo recalculado a cada doação;
// nunca é persistido.
type Insight struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
	ActionLabel string `json:"actionLabel,omitempty"`
}
