// ApolloSunshineGameFinder
// Copyright (c) 2026 The ApolloSunshineGameFinder Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of ApolloSunshineGameFinder.
//
// ApolloSunshineGameFinder is free software: you can redistribute it and/or
// modify it under the terms of the GNU General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ApolloSunshineGameFinder is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ApolloSunshineGameFinder.  If not, see <http://www.gnu.org/licenses/>.

package apollo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog/log"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/steam"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	appsKey       = "apps"
	defaultIndent = "    "
)

// Keys of an app entry the merger reads or writes.
const (
	KeyName           = "name"
	KeyOutput         = "output"
	KeyCmd            = "cmd"
	KeyDetached       = "detached"
	KeyImagePath      = "image-path"
	KeyVirtualDisplay = "virtual-display"
	KeyUUID           = "uuid"
)

var errNotObject = errors.New("not a JSON object")

// field is one member of a JSON object, in document order. Value holds
// the compact raw JSON text.
type field struct {
	Key   string
	Value json.RawMessage
}

// Entry is a single app in apps.json. Members keep their original order
// and raw values, so unknown keys survive a rewrite untouched.
type Entry struct {
	fields []field
}

// EntryView is the typed subset of an entry the merger cares about.
type EntryView struct {
	Name           string   `mapstructure:"name"`
	Cmd            string   `mapstructure:"cmd"`
	ImagePath      string   `mapstructure:"image-path"`
	UUID           string   `mapstructure:"uuid"`
	Detached       []string `mapstructure:"detached"`
	VirtualDisplay bool     `mapstructure:"virtual-display"`
}

// NewEntry creates an empty entry.
func NewEntry() *Entry {
	return &Entry{}
}

// Keys returns the entry's member names in order.
func (e *Entry) Keys() []string {
	keys := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Get returns the raw JSON value stored under key.
func (e *Entry) Get(key string) (json.RawMessage, bool) {
	for _, f := range e.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set stores value under key, appending the key if it is new. It reports
// whether the entry changed; byte-equal values are left alone.
func (e *Entry) Set(key string, value json.RawMessage) bool {
	for i, f := range e.fields {
		if f.Key != key {
			continue
		}
		if bytes.Equal(f.Value, value) {
			return false
		}
		e.fields[i].Value = value
		return true
	}
	e.fields = append(e.fields, field{Key: key, Value: value})
	return true
}

// SetString is Set with a JSON string value.
func (e *Entry) SetString(key, value string) bool {
	return e.Set(key, quote(value))
}

// String returns the member as a Go string if it holds a JSON string.
func (e *Entry) String(key string) (string, bool) {
	raw, ok := e.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Name returns the entry's display name, or "" if it has none.
func (e *Entry) Name() string {
	name, _ := e.String(KeyName)
	return name
}

// View decodes the entry into an EntryView. Sunshine writes some flags as
// strings, so decoding is weakly typed.
func (e *Entry) View() (EntryView, error) {
	m := make(map[string]any, len(e.fields))
	for _, f := range e.fields {
		var v any
		if err := json.Unmarshal(f.Value, &v); err != nil {
			return EntryView{}, fmt.Errorf("decode %q: %w", f.Key, err)
		}
		m[f.Key] = v
	}

	var view EntryView
	if err := weakDecode(m, &view); err != nil {
		return EntryView{}, err
	}
	return view, nil
}

// decodeMember weakly decodes a single member into out. A missing member
// leaves out untouched.
func (e *Entry) decodeMember(key string, out any) error {
	raw, ok := e.Get(key)
	if !ok {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	if err := weakDecode(v, out); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

func weakDecode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("failed to decode entry: %w", err)
	}
	return nil
}

// SteamAppID returns the Steam app ID the entry launches, looking at the
// detached commands first and then at cmd. Only those two members are
// read, so odd values elsewhere in the entry do not hide its identity.
func (e *Entry) SteamAppID() (string, bool) {
	var detached []string
	if err := e.decodeMember(KeyDetached, &detached); err != nil {
		log.Debug().Err(err).Str("name", e.Name()).Msg("ignoring undecodable detached commands")
	}
	for _, d := range detached {
		if id, ok := steam.ExtractAppID(d); ok {
			return id, true
		}
	}

	var cmd string
	if err := e.decodeMember(KeyCmd, &cmd); err != nil {
		log.Debug().Err(err).Str("name", e.Name()).Msg("ignoring undecodable cmd")
		return "", false
	}
	return steam.ExtractAppID(cmd)
}

// Document is a parsed apps.json. Top-level members other than "apps"
// are kept verbatim and in order.
type Document struct {
	indent string
	fields []field
	Apps   []*Entry
}

// NewDocument returns the empty document {"apps": []}.
func NewDocument() *Document {
	return &Document{
		indent: defaultIndent,
		fields: []field{{Key: appsKey}},
	}
}

// Indent returns the indentation used when the document is written.
func (d *Document) Indent() string {
	return d.indent
}

// Append adds an entry after all existing ones.
func (d *Document) Append(e *Entry) {
	d.Apps = append(d.Apps, e)
}

// ParseDocument reads apps.json content. It does not check the document
// against the schema; see Store.Load.
func ParseDocument(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, errors.New("invalid JSON")
	}
	if t := firstToken(data); t != '{' {
		return nil, fmt.Errorf("top level: %w", errNotObject)
	}

	doc := &Document{indent: detectIndent(data)}
	sawApps := false

	err := jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
		k := string(key)
		if k != appsKey {
			raw, err := rawValue(value, dt)
			if err != nil {
				return fmt.Errorf("member %q: %w", k, err)
			}
			doc.fields = append(doc.fields, field{Key: k, Value: raw})
			return nil
		}

		if sawApps {
			return fmt.Errorf("duplicate member %q", appsKey)
		}
		sawApps = true
		doc.fields = append(doc.fields, field{Key: appsKey})
		if dt != jsonparser.Array {
			return fmt.Errorf("member %q: not an array", appsKey)
		}

		var entryErr error
		_, err := jsonparser.ArrayEach(value, func(item []byte, it jsonparser.ValueType, _ int, _ error) {
			if entryErr != nil {
				return
			}
			entry, err := parseEntry(item, it)
			if err != nil {
				entryErr = fmt.Errorf("app %d: %w", len(doc.Apps), err)
				return
			}
			doc.Apps = append(doc.Apps, entry)
		})
		if err != nil {
			return fmt.Errorf("member %q: %w", appsKey, err)
		}
		return entryErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if !sawApps {
		doc.fields = append(doc.fields, field{Key: appsKey})
	}
	return doc, nil
}

func parseEntry(data []byte, dt jsonparser.ValueType) (*Entry, error) {
	if dt != jsonparser.Object {
		return nil, errNotObject
	}
	entry := NewEntry()
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		raw, err := rawValue(value, vt)
		if err != nil {
			return fmt.Errorf("member %q: %w", string(key), err)
		}
		entry.fields = append(entry.fields, field{Key: string(key), Value: raw})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse entry: %w", err)
	}
	return entry, nil
}

// rawValue turns a jsonparser value back into compact JSON text.
// jsonparser hands out strings without their quotes but still escaped.
func rawValue(value []byte, dt jsonparser.ValueType) (json.RawMessage, error) {
	if dt == jsonparser.String {
		out := make([]byte, 0, len(value)+2)
		out = append(out, '"')
		out = append(out, value...)
		return append(out, '"'), nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return nil, fmt.Errorf("failed to compact value: %w", err)
	}
	return buf.Bytes(), nil
}

// Marshal renders the document with its detected indentation and a
// trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.Write(quote(f.Key))
		compact.WriteByte(':')
		if f.Key != appsKey {
			compact.Write(f.Value)
			continue
		}
		compact.WriteByte('[')
		for j, e := range d.Apps {
			if j > 0 {
				compact.WriteByte(',')
			}
			writeEntry(&compact, e)
		}
		compact.WriteByte(']')
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", d.indent); err != nil {
		return nil, fmt.Errorf("failed to indent document: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeEntry(buf *bytes.Buffer, e *Entry) {
	buf.WriteByte('{')
	for i, f := range e.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(quote(f.Key))
		buf.WriteByte(':')
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
}

// quote encodes s as a JSON string without HTML escaping, so paths and
// names with & or < stay readable.
func quote(s string) json.RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// strings always encode; invalid UTF-8 is replaced
		return json.RawMessage(`""`)
	}
	return bytes.TrimRight(buf.Bytes(), "\n")
}

func firstToken(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// detectIndent returns the leading whitespace of the first indented line,
// or four spaces for compact or single-line files.
func detectIndent(data []byte) string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || len(trimmed) == len(line) {
			continue
		}
		return line[:len(line)-len(trimmed)]
	}
	return defaultIndent
}

// foldName normalizes a display name for legacy name matching.
func foldName(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}
