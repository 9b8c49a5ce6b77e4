package report

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"errsift/internal/classify"
)

const (
	// maxPayloadPreview bounds the raw payload preview in a record.
	maxPayloadPreview = 200
	// truncationMarker is appended to a truncated payload preview.
	truncationMarker = "..."
	// maxExtraContext bounds caller-supplied context entries per record.
	maxExtraContext = 5
)

// Record is the output artifact: one classified error occurrence ready to
// hand to a reporter sink. Constructed once and discarded after delivery.
type Record struct {
	ID       string
	Category classify.Category
	Severity classify.Severity
	Fatal    bool
	Reason   string
	Err      error
	Stack    string
	Info     map[string]string
}

// Information renders the record for the sink's information sequence:
// classification results first, then the assembled context in key order.
func (r Record) Information() []string {
	out := make([]string, 0, len(r.Info)+3)
	out = append(out,
		"category: "+r.Category.String(),
		"severity: "+r.Severity.String(),
		"fatal: "+strconv.FormatBool(r.Fatal),
	)
	keys := make([]string, 0, len(r.Info))
	for k := range r.Info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+": "+r.Info[k])
	}
	return out
}

// newRecord classifies an occurrence and assembles the full record. It may
// panic on unprintable caller context; the handler contains that fault.
func newRecord(occ Occurrence) Record {
	category := resolveCategory(occ)

	severity := classify.SeverityFor(category)
	if occ.Severity != nil {
		severity = *occ.Severity
	}

	fatal := classify.IsFatal(occ.message(), occ.Stack, occ.ContextHint)

	now := occ.Time
	if now.IsZero() {
		now = time.Now()
	}

	info := map[string]string{
		"operation": occ.Operation,
		"timestamp": now.UTC().Format(time.RFC3339),
		"category":  category.String(),
	}
	if occ.Err != nil {
		info["error_type"] = fmt.Sprintf("%T", occ.Err)
	}

	endpoint := occ.Endpoint
	var te *classify.TransportError
	if errors.As(occ.Err, &te) {
		info["transport_kind"] = te.Kind.String()
		if te.StatusCode != 0 {
			info["status_code"] = strconv.Itoa(te.StatusCode)
		}
		if endpoint == "" {
			endpoint = te.URL
		}
	}
	if endpoint != "" {
		info["endpoint"] = endpoint
	}
	if occ.DataType != "" {
		info["data_type"] = occ.DataType
	}
	if occ.RawPayload != "" {
		info["payload_preview"] = previewPayload(occ.RawPayload)
		info["payload_size"] = strconv.Itoa(len(occ.RawPayload))
	}
	mergeContext(info, occ.Context)

	return Record{
		ID:       uuid.NewString(),
		Category: category,
		Severity: severity,
		Fatal:    fatal,
		Reason:   reasonFor(category, te != nil, occ.Operation),
		Err:      recordErr(occ),
		Stack:    occ.Stack,
		Info:     info,
	}
}

func resolveCategory(occ Occurrence) classify.Category {
	if occ.Err != nil {
		return classify.Classify(occ.Err)
	}
	return classify.ClassifyMessage(occ.Message)
}

// recordErr returns the error value delivered to the sink, wrapping rendered
// text for remote occurrences that carry no error value.
func recordErr(occ Occurrence) error {
	if occ.Err != nil {
		return occ.Err
	}
	return errors.New(occ.Message)
}

// reasonFor picks the human-readable reason: parsing phrasing first, network
// phrasing second, generic phrasing last.
func reasonFor(category classify.Category, transport bool, operation string) string {
	switch {
	case category == classify.CategoryParsing:
		return "Parsing Error: " + operation
	case transport || isNetworkFamily(category):
		return "Network Error: " + operation
	default:
		return "Error in " + operation
	}
}

func isNetworkFamily(c classify.Category) bool {
	switch c {
	case classify.CategoryNetwork, classify.CategoryTimeout, classify.CategoryServer,
		classify.CategoryClient, classify.CategoryAPI,
		classify.CategoryAuthentication, classify.CategoryAuthorization:
		return true
	}
	return false
}

// previewPayload bounds a raw payload to maxPayloadPreview characters.
func previewPayload(payload string) string {
	if len(payload) <= maxPayloadPreview {
		return payload
	}
	return payload[:maxPayloadPreview] + truncationMarker
}

// mergeContext folds caller context into the info map, at most maxExtraContext
// entries, picked in key order so the cap is deterministic. Existing fixed
// keys are never overwritten.
func mergeContext(info map[string]string, extra map[string]any) {
	if len(extra) == 0 {
		return
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	added := 0
	for i, k := range keys {
		if added >= maxExtraContext {
			metricContextDropped.Add(float64(len(keys) - i))
			return
		}
		if _, taken := info[k]; taken {
			continue
		}
		info[k] = fmt.Sprintf("%v", extra[k])
		added++
	}
}
