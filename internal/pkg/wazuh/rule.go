// Copyright (c) 2024 PT Defender Nusa Semesta and contributors, All rights reserved.
//
// This file is part of Fortirule.
//
// Fortirule is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation version 3 of the License.
//
// Fortirule is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fortirule. If not, see <https://www.gnu.org/licenses/>.

package wazuh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/defenxor/fortirule/internal/pkg/fortilog"
	log "github.com/defenxor/fortirule/internal/pkg/shared/logger"
	"github.com/defenxor/fortirule/internal/pkg/shared/str"
)

// Defaults for Options
const (
	DefaultHeaderID          = 100010
	DefaultHeaderLevel       = 4
	DefaultHeaderDescription = "Fortigate messages grouped"
	DefaultDecoderName       = "fortinet-fortigate-firewall"
	DefaultGroupName         = "fortigate-rules"
	DefaultTagPrefix         = "fortios"
	DefaultFallback          = "No description"

	// MaxLevel is the highest rule level Wazuh accepts
	MaxLevel = 16
)

// Options controls the constant parts of the generated rule file
type Options struct {
	HeaderID          int
	HeaderLevel       *int // nil selects DefaultHeaderLevel, 0 is a valid level
	HeaderDescription string
	DecoderName       string
	GroupName         string
	TagPrefix         string
	Fallback          string
}

// DefaultOptions returns the options used for FortiGate firewall logs
func DefaultOptions() Options {
	return Options{
		HeaderID:          DefaultHeaderID,
		HeaderLevel:       Int(DefaultHeaderLevel),
		HeaderDescription: DefaultHeaderDescription,
		DecoderName:       DefaultDecoderName,
		GroupName:         DefaultGroupName,
		TagPrefix:         DefaultTagPrefix,
		Fallback:          DefaultFallback,
	}
}

// Int returns a pointer to v, for use with Options.HeaderLevel
func Int(v int) *int {
	return &v
}

// Validate checks the values that can't be defaulted
func (o Options) Validate() error {
	if o.HeaderLevel != nil && (*o.HeaderLevel < 0 || *o.HeaderLevel > MaxLevel) {
		return fmt.Errorf("header level %d out of range 0-%d", *o.HeaderLevel, MaxLevel)
	}
	return nil
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.HeaderID <= 0 {
		o.HeaderID = d.HeaderID
	}
	if o.HeaderLevel == nil {
		o.HeaderLevel = d.HeaderLevel
	}
	if o.HeaderDescription == "" {
		o.HeaderDescription = d.HeaderDescription
	}
	if o.DecoderName == "" {
		o.DecoderName = d.DecoderName
	}
	if o.GroupName == "" {
		o.GroupName = d.GroupName
	}
	if o.TagPrefix == "" {
		o.TagPrefix = d.TagPrefix
	}
	if o.Fallback == "" {
		o.Fallback = d.Fallback
	}
	return o
}

// Rule is a single generated Wazuh rule. MatchedID and Description are
// already escaped for XML.
type Rule struct {
	ID          int
	Level       int
	MatchedID   string
	Description string
	Groups      []string
}

// GroupString joins the group tags with commas
func (r Rule) GroupString() string {
	return strings.Join(r.Groups, ",")
}

// RuleSet is the header rule followed by one rule per record
type RuleSet struct {
	Options Options
	Header  Rule
	Rules   []Rule
}

// Count returns the number of rules including the header
func (rs RuleSet) Count() int {
	return len(rs.Rules) + 1
}

// Generate creates one rule per record, in order, with contiguous IDs starting
// right after the header rule ID. Duplicate message IDs still get their own rule.
func Generate(records []fortilog.Record, opts Options) RuleSet {
	opts = opts.withDefaults()
	rs := RuleSet{
		Options: opts,
		Header: Rule{
			ID:          opts.HeaderID,
			Level:       *opts.HeaderLevel,
			Description: str.XMLEscape(opts.HeaderDescription),
		},
		Rules: make([]Rule, 0, len(records)),
	}

	seen := make(map[string]int, len(records))
	for i, rec := range records {
		r := newRule(rec, opts)
		r.ID = opts.HeaderID + 1 + i

		rawID := str.Deref(rec.MessageID)
		if first, ok := seen[rawID]; ok {
			log.Debug(log.M{Msg: "message ID already used by rule " + strconv.Itoa(first), MsgID: rawID, Rule: r.ID})
		} else {
			seen[rawID] = r.ID
		}
		rs.Rules = append(rs.Rules, r)
	}
	log.Info(log.M{Msg: "generated " + strconv.Itoa(rs.Count()) + " rules"})
	return rs
}

func newRule(rec fortilog.Record, opts Options) Rule {
	r := Rule{
		MatchedID:   MatchedID(str.Deref(rec.MessageID)),
		Description: str.XMLEscape(opts.Fallback),
	}
	if m := str.Deref(rec.Meaning); m != "" {
		r.Description = str.XMLEscape(m)
	}

	severity := NormalizeSeverity(str.Deref(rec.Severity))
	var known bool
	r.Level, known = Level(severity)
	if !known && severity != "" {
		log.Warn(log.M{Msg: "unknown severity '" + severity + "', using default level", MsgID: str.Deref(rec.MessageID)})
	}

	if t := str.Deref(rec.Type); t != "" {
		r.Groups = append(r.Groups, opts.TagPrefix+".event."+strings.ToLower(t))
	}
	if c := str.Deref(rec.Category); c != "" {
		r.Groups = append(r.Groups, opts.TagPrefix+".category."+strings.ToLower(c))
	}
	if known {
		r.Groups = append(r.Groups, opts.TagPrefix+".severity."+severity)
	}
	return r
}
