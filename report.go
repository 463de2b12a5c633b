package emailverifier

import (
	"encoding/json"
	"time"
)

// DebugSmtp is the "smtp" sub-object of DebugTrace, spec.md §6.
type DebugSmtp struct {
	VerifMethod string `json:"verif_method"`
	Host        string `json:"host,omitempty"`
	Proxy       string `json:"proxy,omitempty"`
}

// DebugTrace records which method/host/proxy the orchestrator used and how
// long the verification took, spec.md §3/§6.
type DebugTrace struct {
	TraceID    string        `json:"trace_id"`
	ServerName string        `json:"server_name"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	Duration   time.Duration `json:"duration"`
	Smtp       DebugSmtp     `json:"smtp"`
}

// VerificationReport is the C13 output, owned exclusively by the
// orchestrator and never mutated after it is returned (spec.md §3).
// When an error string is set, MarshalJSON writes that section's error form
// and ignores the typed value: Smtp can be non-nil alongside SmtpError (the
// prober returns its partial outcome with the error). A nil section with no
// error (e.g. every section after an invalid-syntax short-circuit, or Smtp
// when the SMTP check is disabled) is written with zero values.
// MarshalJSON/UnmarshalJSON translate between the wire shape of spec.md §6
// and these typed fields.
type VerificationReport struct {
	Input           string
	IsReachable     Verdict
	Misc            *MiscFacts
	MiscError       string
	Mx              *MxSet
	MxError         string
	Smtp            *SmtpOutcome
	SmtpDescription ReplyCategory
	SmtpError       string
	Syntax          Syntax
	Debug           DebugTrace
}

type miscWire struct {
	IsDisposable   bool    `json:"is_disposable"`
	IsRoleAccount  bool    `json:"is_role_account"`
	IsB2C          bool    `json:"is_b2c"`
	GravatarURL    *string `json:"gravatar_url"`
	HaveIBeenPwned *bool   `json:"haveibeenpwned"`
	Error          string  `json:"error,omitempty"`
}

type mxWire struct {
	AcceptsMail bool     `json:"accepts_mail"`
	Records     []string `json:"records"`
	Error       string   `json:"error,omitempty"`
}

type smtpWire struct {
	CanConnectSmtp bool   `json:"can_connect_smtp"`
	HasFullInbox   bool   `json:"has_full_inbox"`
	IsCatchAll     bool   `json:"is_catch_all"`
	IsDeliverable  bool   `json:"is_deliverable"`
	IsDisabled     bool   `json:"is_disabled"`
	Error          string `json:"error,omitempty"`
	Description    string `json:"description,omitempty"`
}

type syntaxWire struct {
	Address    *string `json:"address"`
	Domain     string  `json:"domain"`
	Valid      bool    `json:"is_valid_syntax"`
	Username   string  `json:"username"`
	Normalized *string `json:"normalized_email"`
	Suggestion *string `json:"suggestion"`
}

type debugWire struct {
	TraceID    string    `json:"trace_id"`
	ServerName string    `json:"server_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Duration   int64     `json:"duration"`
	Smtp       DebugSmtp `json:"smtp"`
}

type reportWire struct {
	Input       string     `json:"input"`
	IsReachable Verdict    `json:"is_reachable"`
	Misc        miscWire   `json:"misc"`
	Mx          mxWire     `json:"mx"`
	Smtp        smtpWire   `json:"smtp"`
	Syntax      syntaxWire `json:"syntax"`
	Debug       debugWire  `json:"debug"`
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// MarshalJSON renders the exact field-for-field wire shape spec.md §6
// specifies, used externally by consumers of this module.
func (r VerificationReport) MarshalJSON() ([]byte, error) {
	w := reportWire{
		Input:       r.Input,
		IsReachable: r.IsReachable,
		Syntax: syntaxWire{
			Address:    strPtrOrNil(r.Syntax.Address),
			Domain:     r.Syntax.Domain,
			Valid:      r.Syntax.Valid,
			Username:   r.Syntax.Username,
			Normalized: strPtrOrNil(r.Syntax.Normalized),
			Suggestion: strPtrOrNil(r.Syntax.Suggestion),
		},
		Debug: debugWire{
			TraceID:    r.Debug.TraceID,
			ServerName: r.Debug.ServerName,
			StartTime:  r.Debug.StartTime,
			EndTime:    r.Debug.EndTime,
			Duration:   int64(r.Debug.Duration),
			Smtp:       r.Debug.Smtp,
		},
	}

	if r.MiscError != "" {
		w.Misc = miscWire{Error: r.MiscError}
	} else if r.Misc != nil {
		w.Misc = miscWire{
			IsDisposable:   r.Misc.IsDisposable,
			IsRoleAccount:  r.Misc.IsRoleAccount,
			IsB2C:          r.Misc.IsB2C,
			GravatarURL:    r.Misc.GravatarURL,
			HaveIBeenPwned: r.Misc.HaveIBeenPwned,
		}
	}

	if r.MxError != "" {
		w.Mx = mxWire{Error: r.MxError}
	} else if r.Mx != nil {
		w.Mx = mxWire{AcceptsMail: r.Mx.AcceptsMail, Records: r.Mx.RecordHosts()}
	}

	if r.SmtpError != "" {
		w.Smtp = smtpWire{Error: r.SmtpError}
		if r.SmtpDescription == ReplyIpBlacklisted || r.SmtpDescription == ReplyNeedsReverseDns {
			w.Smtp.Description = string(r.SmtpDescription)
		}
	} else if r.Smtp != nil {
		w.Smtp = smtpWire{
			CanConnectSmtp: r.Smtp.CanConnectSmtp,
			HasFullInbox:   r.Smtp.HasFullInbox,
			IsCatchAll:     r.Smtp.IsCatchAll,
			IsDeliverable:  r.Smtp.IsDeliverable,
			IsDisabled:     r.Smtp.IsDisabled,
		}
	}

	return json.Marshal(w)
}

// UnmarshalJSON parses the wire shape MarshalJSON produces back into a
// VerificationReport, so serializing and re-parsing yields a structurally
// equal value (spec.md §8.15).
func (r *VerificationReport) UnmarshalJSON(data []byte) error {
	var w reportWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*r = VerificationReport{
		Input:       w.Input,
		IsReachable: w.IsReachable,
		Syntax: Syntax{
			Domain:   w.Syntax.Domain,
			Valid:    w.Syntax.Valid,
			Username: w.Syntax.Username,
		},
		Debug: DebugTrace{
			TraceID:    w.Debug.TraceID,
			ServerName: w.Debug.ServerName,
			StartTime:  w.Debug.StartTime,
			EndTime:    w.Debug.EndTime,
			Duration:   time.Duration(w.Debug.Duration),
			Smtp:       w.Debug.Smtp,
		},
	}
	if w.Syntax.Address != nil {
		r.Syntax.Address = *w.Syntax.Address
	}
	if w.Syntax.Normalized != nil {
		r.Syntax.Normalized = *w.Syntax.Normalized
	}
	if w.Syntax.Suggestion != nil {
		r.Syntax.Suggestion = *w.Syntax.Suggestion
	}

	if w.Misc.Error != "" {
		r.MiscError = w.Misc.Error
	} else {
		r.Misc = &MiscFacts{
			IsDisposable:   w.Misc.IsDisposable,
			IsRoleAccount:  w.Misc.IsRoleAccount,
			IsB2C:          w.Misc.IsB2C,
			GravatarURL:    w.Misc.GravatarURL,
			HaveIBeenPwned: w.Misc.HaveIBeenPwned,
		}
	}

	if w.Mx.Error != "" {
		r.MxError = w.Mx.Error
	} else {
		records := make([]MxRecord, len(w.Mx.Records))
		for i, h := range w.Mx.Records {
			records[i] = MxRecord{Host: h}
		}
		r.Mx = &MxSet{AcceptsMail: w.Mx.AcceptsMail, Records: records}
	}

	if w.Smtp.Error != "" {
		r.SmtpError = w.Smtp.Error
		r.SmtpDescription = ReplyCategory(w.Smtp.Description)
	} else {
		r.Smtp = &SmtpOutcome{
			CanConnectSmtp: w.Smtp.CanConnectSmtp,
			HasFullInbox:   w.Smtp.HasFullInbox,
			IsCatchAll:     w.Smtp.IsCatchAll,
			IsDeliverable:  w.Smtp.IsDeliverable,
			IsDisabled:     w.Smtp.IsDisabled,
		}
	}

	return nil
}
