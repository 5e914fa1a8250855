// Package render turns evaluation-service responses into the text blocks
// shown in the page's display regions.
//
// The service renamed response fields across contract generations
// (score→feasibility_score, debt_ratio→total_budget, ...), so every displayed
// fact is extracted by probing an ordered list of candidate keys. The
// first-listed key present wins, newest contract name first; the service
// never documented precedence when several aliases coexist, so first-listed
// is treated as authoritative.
package render

import "fmt"

const placeholder = "—"

func probeNumber(body map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		raw, ok := body[key]
		if !ok {
			continue
		}
		if n, ok := raw.(float64); ok {
			return n, true
		}
	}
	return 0, false
}

func probeString(body map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		raw, ok := body[key]
		if !ok {
			continue
		}
		if s, ok := raw.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

func probeList(body map[string]any, keys ...string) ([]string, bool) {
	for _, key := range keys {
		raw, ok := body[key]
		if !ok {
			continue
		}
		items, ok := raw.([]any)
		if !ok || len(items) == 0 {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, fmt.Sprint(item))
		}
		return out, true
	}
	return nil, false
}

func probeAny(body map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if raw, ok := body[key]; ok {
			return raw, true
		}
	}
	return nil, false
}
