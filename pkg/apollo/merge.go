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
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/steam"
)

// SimilarityThreshold is the Jaro-Winkler score at which an added game is
// reported as a possible duplicate of an existing entry.
const SimilarityThreshold float32 = 0.92

var rawTrue = json.RawMessage("true")

// MergeOptions controls how new and matched entries are written.
type MergeOptions struct {
	// NewUUID generates ids for new entries. Defaults to upper-case
	// random UUIDs, the form Apollo writes.
	NewUUID        func() string
	VirtualDisplay bool
}

// Match pairs a scanned record with the apps.json entry it touched.
type Match struct {
	Record     steam.GameRecord
	Entry      string
	Similarity float32
}

// Report describes what a merge did.
type Report struct {
	Added     []Match
	Updated   []Match
	Unchanged []Match
	// Similar lists added games whose name closely resembles an existing
	// entry without a Steam launch target.
	Similar []Match
}

// Changed reports whether the document needs to be written.
func (r Report) Changed() bool {
	return len(r.Added) > 0 || len(r.Updated) > 0
}

// Merge folds scanned records into doc. Entries are matched by the Steam
// app ID in their launch target, falling back to a normalized name for
// entries that have none. Unmatched records are appended in scan order;
// existing entries are never removed or reordered.
func Merge(doc *Document, records []steam.GameRecord, opts MergeOptions) Report {
	if opts.NewUUID == nil {
		opts.NewUUID = newUUID
	}

	byID := make(map[string]*Entry, len(doc.Apps))
	byName := make(map[string]*Entry)
	var anonymous []*Entry
	for _, e := range doc.Apps {
		if id, ok := e.SteamAppID(); ok {
			if _, dup := byID[id]; !dup {
				byID[id] = e
			}
			continue
		}
		anonymous = append(anonymous, e)
		key := foldName(e.Name())
		if key == "" {
			continue
		}
		if _, dup := byName[key]; !dup {
			byName[key] = e
		}
	}

	var report Report
	for _, rec := range collapse(records) {
		if e, ok := byID[rec.AppID]; ok {
			m := Match{Record: rec, Entry: e.Name()}
			if updateEntry(e, rec, opts) {
				log.Debug().Str("appid", rec.AppID).Str("name", rec.Name).Msg("updated entry")
				report.Updated = append(report.Updated, m)
			} else {
				report.Unchanged = append(report.Unchanged, m)
			}
			continue
		}

		if e, ok := byName[foldName(rec.Name)]; ok {
			log.Debug().
				Str("appid", rec.AppID).
				Str("entry", e.Name()).
				Msg("matched entry by name, leaving it untouched")
			report.Unchanged = append(report.Unchanged, Match{Record: rec, Entry: e.Name()})
			continue
		}

		if m, ok := mostSimilar(rec, anonymous); ok {
			report.Similar = append(report.Similar, m)
		}

		e := newEntry(rec, opts)
		doc.Append(e)
		byID[rec.AppID] = e
		log.Debug().Str("appid", rec.AppID).Str("name", rec.Name).Msg("added entry")
		report.Added = append(report.Added, Match{Record: rec, Entry: rec.Name})
	}

	return report
}

// collapse removes repeated app IDs. The last record wins but keeps the
// position of the first one.
func collapse(records []steam.GameRecord) []steam.GameRecord {
	index := make(map[string]int, len(records))
	out := make([]steam.GameRecord, 0, len(records))
	for _, rec := range records {
		if i, ok := index[rec.AppID]; ok {
			log.Debug().Str("appid", rec.AppID).Msg("app found in more than one library")
			out[i] = rec
			continue
		}
		index[rec.AppID] = len(out)
		out = append(out, rec)
	}
	return out
}

func newEntry(rec steam.GameRecord, opts MergeOptions) *Entry {
	e := NewEntry()
	e.SetString(KeyName, rec.Name)
	e.SetString(KeyOutput, "")
	e.SetString(KeyCmd, "")
	e.Set(KeyDetached, detachedValue(rec.LaunchTarget))
	e.SetString(KeyImagePath, rec.ImagePath)
	if opts.VirtualDisplay {
		e.Set(KeyVirtualDisplay, rawTrue)
	}
	e.SetString(KeyUUID, opts.NewUUID())
	return e
}

// updateEntry refreshes the fields the tool owns on an entry that already
// launches rec. It reports whether anything changed.
func updateEntry(e *Entry, rec steam.GameRecord, opts MergeOptions) bool {
	changed := e.SetString(KeyName, rec.Name)

	if rec.ImagePath != "" {
		if current, _ := e.String(KeyImagePath); current == "" {
			changed = e.SetString(KeyImagePath, rec.ImagePath) || changed
		}
	}

	if opts.VirtualDisplay {
		var enabled bool
		if err := e.decodeMember(KeyVirtualDisplay, &enabled); err != nil || !enabled {
			changed = e.Set(KeyVirtualDisplay, rawTrue) || changed
		}
	}

	if _, ok := e.Get(KeyUUID); !ok {
		changed = e.SetString(KeyUUID, opts.NewUUID()) || changed
	}

	return changed
}

func detachedValue(target string) json.RawMessage {
	return json.RawMessage("[" + string(quote(target)) + "]")
}

func mostSimilar(rec steam.GameRecord, entries []*Entry) (Match, bool) {
	query := foldName(rec.Name)
	var best Match
	for _, e := range entries {
		name := e.Name()
		candidate := foldName(name)
		if candidate == "" {
			continue
		}
		similarity := edlib.JaroWinklerSimilarity(query, candidate)
		if similarity >= SimilarityThreshold && similarity > best.Similarity {
			best = Match{Record: rec, Entry: name, Similarity: similarity}
		}
	}
	return best, best.Entry != ""
}

func newUUID() string {
	return strings.ToUpper(uuid.New().String())
}
