package steam

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var appNameSelectors = []string{"#appHubAppName", ".apphub_AppName"}

// GetAppName reads the app title from its store page.
func (c *Client) GetAppName(ctx context.Context, appID AppID) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/app/%s/?l=%s", c.storeUrl, appID.ToString(), c.language),
		nil,
	)
	if err != nil {
		return "", err
	}

	req.Header.Add("User-Agent", c.useragent)
	// skip the age gate
	req.AddCookie(&http.Cookie{Name: "birthtime", Value: "0"})
	req.AddCookie(&http.Cookie{Name: "mature_content", Value: "1"})

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}

	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("store page for app %d: %s", appID, resp.Status)
	}

	return c.parseAppName(resp)
}

func (c *Client) parseAppName(resp *http.Response) (string, error) {
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	for _, sel := range appNameSelectors {
		if name := strings.TrimSpace(doc.Find(sel).First().Text()); name != "" {
			return name, nil
		}
	}

	return "", AppNotFoundError
}
