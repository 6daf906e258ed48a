package dotty

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Package dotty provides debugging/visualization helpers for a
// pseq.Sequence[T]'s tree: a Graphviz DOT dump, and a live watcher that
// republishes a sequence's shape on every call to Publish so that a
// terminal subscriber can render successive snapshots as they change.

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/guiguan/caster"
	"golang.org/x/term"

	"github.com/arjunsahay/pseq"
)

// Dump writes the internal tree structure of s to w in Graphviz DOT format.
func Dump[T any](s pseq.Sequence[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	pseq.Walk(s, func(id int, info pseq.NodeInfo[T], leftID, rightID int) {
		styles := nodeDotStyles(info.IsLeaf)
		if info.IsLeaf {
			label := fmt.Sprintf("%d items\\nh=%d", len(info.Items), info.Height)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, styles)
			return
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%d|%d\" %s];\n", id, info.Weight, info.Height, styles)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, leftID)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, rightID)
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isLeaf bool) string {
	if isLeaf {
		return ",style=filled,shape=box,fillcolor=\"#a3d7e4\""
	}
	return ",style=filled,shape=circle,color=black,fillcolor=\"#ccddff\""
}

// Watcher broadcasts short, colorized snapshot lines of a Sequence's shape
// to subscribers, for live terminal inspection while a sequence is being
// edited interactively. It wraps a caster.Caster, the same pub/sub
// primitive the teacher's console demo relies on for pushing terminal
// updates.
type Watcher struct {
	c       *caster.Caster
	leaf    *color.Color
	branch  *color.Color
	leafFmt string
}

// NewWatcher returns a Watcher ready to Publish snapshots to subscribers
// obtained via Subscribe.
func NewWatcher() *Watcher {
	return &Watcher{
		c:      caster.New(nil),
		leaf:   color.New(color.FgCyan),
		branch: color.New(color.FgYellow),
	}
}

// Subscribe returns a channel of snapshot lines published by Publish, and a
// cancel function the caller must call once done watching.
func (w *Watcher) Subscribe(ctx context.Context) (<-chan interface{}, context.CancelFunc) {
	return w.c.Sub(ctx, 0)
}

// Close stops accepting new subscriptions and releases the Watcher.
func (w *Watcher) Close() error {
	return w.c.Close()
}

// Publish renders one line per node of s's tree (colorized leaf vs. branch,
// width-limited to the current terminal if stdout is a terminal) and
// broadcasts it to every active subscriber.
func (w *Watcher) Publish(s pseq.Sequence[int]) {
	width := terminalWidth()
	pseq.Walk(s, func(id int, info pseq.NodeInfo[int], leftID, rightID int) {
		var line string
		if info.IsLeaf {
			line = w.leaf.Sprintf("leaf#%d: %d items", id, len(info.Items))
		} else {
			line = w.branch.Sprintf("branch#%d: weight=%d -> #%d,#%d", id, info.Weight, leftID, rightID)
		}
		if len(line) > width {
			line = line[:width]
		}
		w.c.Pub(line)
	})
}

func terminalWidth() int {
	if !term.IsTerminal(1) {
		return 120
	}
	width, _, err := term.GetSize(1)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
