package rawcalls

import "net/http"

func fetch() {
	resp, err := http.Get("http://example.com") // want `вызов http.Get запрещён`
	if err == nil {
		resp.Body.Close()
	}

	c := http.DefaultClient // want `http.DefaultClient запрещён`
	_ = c

	client := &http.Client{}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	if resp, err := client.Get("http://example.com"); err == nil {
		resp.Body.Close()
	}
	_ = req
}
