// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"unicode"
)

// clientFromAreaPath returns the client an area path belongs to: its last
// segment without a " - <project>" suffix, in title case. The root project
// alone belongs to no client.
//
//	"Root\Delivery\Acme Foods - Portal" -> "Acme Foods"
func clientFromAreaPath(areaPath string) string {
	segments := strings.Split(areaPath, `\`)
	if len(segments) < 2 {
		return ""
	}

	name := strings.TrimSpace(segments[len(segments)-1])
	if base, _, ok := strings.Cut(name, " - "); ok {
		name = strings.TrimSpace(base)
	}

	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// visibleTo reports whether a work item on areaPath may be shown to a caller
// restricted to client. An empty client sees everything.
func visibleTo(areaPath, client string) bool {
	if client == "" {
		return true
	}

	return strings.Contains(strings.ToLower(areaPath), strings.ToLower(client))
}
