package stripe

// Config holds Stripe API credentials.
// APIURL is overridable so tests can point the client at a local server.
type Config struct {
	SecretKey string
	APIURL    string
	Currency  string
}

// GetPaymentIntentsURL returns the payment intents endpoint
func (c *Config) GetPaymentIntentsURL() string {
	return c.APIURL + "/v1/payment_intents"
}
