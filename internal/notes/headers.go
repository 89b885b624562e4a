package notes

import "net/http"

// headerClient adds fixed headers (e.g. OpenRouter's HTTP-Referer) to every
// request made by the OpenAI client.
type headerClient struct {
	headers map[string]string
}

func (c *headerClient) Do(req *http.Request) (*http.Response, error) {
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	return http.DefaultClient.Do(req)
}
