package emailverifier

import (
	"bufio"
	"net/http"
	"strings"
	"sync"
	"time"
)

// disposableSyncDomains holds the disposable-domain set loaded from the
// embedded dataset, plus anything added at runtime via AddDisposableDomains
// or fetched by the auto-update schedule. It is a sync.Map (not a plain
// map behind a mutex) because it is read far more often than written and
// is shared by every concurrent verification, mirroring the teacher's own
// disposableSyncDomains field.
var disposableSyncDomains sync.Map

func init() {
	for _, domain := range splitDataLines(embeddedDisposableDomains) {
		disposableSyncDomains.Store(domain, struct{}{})
	}
}

// IsDisposable reports whether domain is a known disposable-email provider.
func (v *Verifier) IsDisposable(domain string) bool {
	_, ok := disposableSyncDomains.Load(strings.ToLower(domain))
	return ok
}

// updateDisposableDomains fetches dataURL and merges each line into
// disposableSyncDomains; used by the auto-update schedule. Grounded on the
// teacher's own update-from-URL idiom referenced by
// EnableAutoUpdateDisposable, generalized into its own named function so it
// can be unit tested with an httptest server instead of the real GitHub
// blocklist.
func updateDisposableDomains(dataURL string) error {
	req, err := http.NewRequest(http.MethodGet, dataURL, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		disposableSyncDomains.Store(line, struct{}{})
	}
	return scanner.Err()
}

// disposableRefreshInterval is how often EnableAutoUpdateDisposable
// refreshes the dataset.
const disposableRefreshInterval = 24 * time.Hour
