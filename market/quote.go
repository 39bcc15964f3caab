package market

const quoteJitterRange = 0.05

// SimulateQuote fabricates a plausible spot quote around the symbol's
// reference price, for when the live feed is unreachable and no last-good
// value exists.
func (g *Generator) SimulateQuote(symbol string) (float64, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	base := ReferencePrice(symbol)
	price := base * (1 + g.uniform(quoteJitterRange))
	changePct := (price - base) / base * 100
	return price, changePct
}
