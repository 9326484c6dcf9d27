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

// Package vdfbinary decodes the binary KeyValues format Steam uses for
// files such as userdata/<id>/config/shortcuts.vdf.
//
// Derived from github.com/TimDeve/valve-vdf-binary (MIT).
package vdfbinary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	markerMap    byte = 0x00
	markerString byte = 0x01
	markerInt32  byte = 0x02
	markerEnd    byte = 0x08
	markerEndAlt byte = 0x0B
)

var (
	ErrEmptyVDF     = errors.New("binary vdf is empty")
	ErrNotBinaryVDF = errors.New("file is not a binary vdf (text vdf?)")
	ErrCorruptedVDF = errors.New("binary vdf ended unexpectedly")
)

// Kind is the type of value held by a Node.
type Kind uint8

const (
	KindMap Kind = iota
	KindString
	KindUint32
)

// Node is a decoded binary VDF value. Map keys are stored lower-cased,
// matching how Steam itself treats them.
type Node struct {
	Children map[string]*Node
	Str      string
	Num      uint32
	Kind     Kind
}

// Child returns the named child of a map node.
func (n *Node) Child(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMap {
		return nil, false
	}
	c, ok := n.Children[strings.ToLower(key)]
	return c, ok
}

// String returns the string value of the named child.
func (n *Node) String(key string) (string, bool) {
	c, ok := n.Child(key)
	if !ok || c.Kind != KindString {
		return "", false
	}
	return c.Str, true
}

// Uint returns the numeric value of the named child.
func (n *Node) Uint(key string) (uint32, bool) {
	c, ok := n.Child(key)
	if !ok || c.Kind != KindUint32 {
		return 0, false
	}
	return c.Num, true
}

// Bool interprets a numeric child as a flag.
func (n *Node) Bool(key string) (bool, bool) {
	v, ok := n.Uint(key)
	return v != 0, ok
}

// List returns the children of an array-like map ("0", "1", ...) in index
// order. Non-numeric keys are ignored.
func (n *Node) List() []*Node {
	if n == nil || n.Kind != KindMap {
		return nil
	}
	type indexed struct {
		node *Node
		idx  int
	}
	items := make([]indexed, 0, len(n.Children))
	for k, c := range n.Children {
		idx, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		items = append(items, indexed{idx: idx, node: c})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].idx < items[j].idx })

	out := make([]*Node, len(items))
	for i, it := range items {
		out[i] = it.node
	}
	return out
}

// Decode reads a whole binary VDF document and returns its root map.
func Decode(r io.Reader) (*Node, error) {
	br := bufio.NewReader(r)

	first, err := br.Peek(1)
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyVDF
	}
	if err != nil {
		return nil, fmt.Errorf("peek error: %w", err)
	}

	switch first[0] {
	case markerMap, markerString, markerInt32, markerEnd:
	default:
		return nil, ErrNotBinaryVDF
	}

	root, err := decodeMap(br)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, ErrCorruptedVDF
	}
	return root, err
}

func decodeMap(br *bufio.Reader) (*Node, error) {
	node := &Node{Kind: KindMap, Children: make(map[string]*Node)}

	for {
		marker, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read marker: %w", err)
		}
		if marker == markerEnd || marker == markerEndAlt {
			return node, nil
		}

		key, err := readCString(br)
		if err != nil {
			return nil, err
		}

		var child *Node
		switch marker {
		case markerMap:
			child, err = decodeMap(br)
		case markerString:
			var s string
			s, err = readCString(br)
			child = &Node{Kind: KindString, Str: s}
		case markerInt32:
			var num uint32
			num, err = readUint32(br)
			child = &Node{Kind: KindUint32, Num: num}
		default:
			err = fmt.Errorf("unexpected marker 0x%02x for key %q", marker, key)
		}
		if err != nil {
			return nil, err
		}

		node.Children[strings.ToLower(key)] = child
	}
}

func readCString(br *bufio.Reader) (string, error) {
	s, err := br.ReadString(0x00)
	if err != nil {
		return "", fmt.Errorf("read string: %w", err)
	}
	return s[:len(s)-1], nil
}

func readUint32(br *bufio.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(br, b[:]); err != nil {
		return 0, fmt.Errorf("read number: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
