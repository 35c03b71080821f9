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
	"bytes"
	"io"
	"text/template"

	"github.com/defenxor/fortirule/internal/pkg/shared/str"
)

var templateFunctions = template.FuncMap{
	"xml": str.XMLEscape,
}

const templRules = `<group name="{{ xml .Options.GroupName }}">
    <rule id="{{ .Header.ID }}" level="{{ .Header.Level }}">
        <decoded_as>{{ xml $.Options.DecoderName }}</decoded_as>
        <description>{{ .Header.Description }}</description>
    </rule>
{{- range .Rules }}
    <rule id="{{ .ID }}" level="{{ .Level }}">
        <decoded_as>{{ xml $.Options.DecoderName }}</decoded_as>
        <if_sid>{{ $.Header.ID }}</if_sid>
        <!-- {{ .MatchedID }} -->
        <field name="message_id">{{ .MatchedID }}</field>
        <description>{{ .Description }}</description>
        <group>{{ xml .GroupString }}</group>
    </rule>
{{- end }}
</group>
`

var rulesTemplate = template.Must(template.New("wazuh-rules").Funcs(templateFunctions).Parse(templRules))

// Bytes renders the rule set as a Wazuh rule file
func (rs RuleSet) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := rulesTemplate.Execute(&buf, rs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo renders the rule set into w. Nothing is written if rendering fails.
func (rs RuleSet) WriteTo(w io.Writer) (int64, error) {
	b, err := rs.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
