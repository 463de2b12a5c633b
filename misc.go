package emailverifier

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MiscFacts is the C10 result, spec.md §3's MiscFacts.
type MiscFacts struct {
	IsDisposable  bool    `json:"is_disposable"`
	IsRoleAccount bool    `json:"is_role_account"`
	IsB2C         bool    `json:"is_b2c"`
	GravatarURL   *string `json:"gravatar_url,omitempty"`
	HaveIBeenPwned *bool  `json:"haveibeenpwned,omitempty"`
	TLDExists     bool    `json:"-"`
}

// checkMisc runs C10's enrichment checks. Disposable/role-account/B2C are
// synchronous embedded-set lookups; Gravatar and HaveIBeenPwned are
// optional network calls run concurrently via errgroup, the same fan-out
// shape the teacher's Verify uses for its own checks.
func (v *Verifier) checkMisc(ctx context.Context, syntax Syntax, email string) (*MiscFacts, error) {
	facts := &MiscFacts{
		IsDisposable:  v.IsDisposable(syntax.Domain),
		IsRoleAccount: v.IsRoleAccount(syntax.Username),
		IsB2C:         v.IsFreeDomain(syntax.Domain),
	}

	if !v.TopLevelDomainDisabled {
		facts.TLDExists = TopLevelDomainExists(domainToASCII(syntax.Domain))
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if !v.gravatarCheckEnabled {
			return nil
		}
		gravatar, err := v.CheckGravatar(ctx, email)
		if err != nil || gravatar == nil || !gravatar.HasGravatar {
			return nil
		}
		facts.GravatarURL = &gravatar.GravatarUrl
		return nil
	})

	g.Go(func() error {
		pwned, err := v.CheckHaveIBeenPwned(ctx, email)
		if err != nil {
			// Misc enrichment errors never block a verdict (spec.md §7).
			return nil
		}
		facts.HaveIBeenPwned = pwned
		return nil
	})

	_ = g.Wait()
	return facts, nil
}
