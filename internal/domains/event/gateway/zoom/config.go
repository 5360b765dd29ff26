package zoom

import "fmt"

// Config holds Zoom API credentials.
// APIURL is overridable so tests can point the client at a local server.
type Config struct {
	APIURL   string
	JWTToken string
}

// GetRegistrantsURL returns the webinar registrants endpoint
func (c *Config) GetRegistrantsURL(webinarID string) string {
	return fmt.Sprintf("%s/v2/webinars/%s/registrants", c.APIURL, webinarID)
}
