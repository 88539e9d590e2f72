// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package logio writes per-step surface output in the legacy ASCII VTK
// polydata format (§4.12), one file per surface/wake per step, laid
// out under a log directory the way fem/summary.go lays out its
// per-stage output files.
package logio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/vortexje/vortexje/geom"
)

// Writer accumulates the directory layout for one solver's log output
// (§4.12): <dir>/body_<id>/{non_lifting_surface_<i>,lifting_surface_<i>,wake_<i>}/step_<n>.vtk
type Writer struct {
	Dir string
}

// New returns a Writer rooted at dir; dir is created lazily on first
// use, mirroring fem.Start's erasefiles/Dirout handling.
func New(dir string) *Writer {
	return &Writer{Dir: dir}
}

// SurfaceData is the set of per-panel scalar/vector fields §4.12
// attaches to a surface dump. Any field may be nil, in which case it
// is omitted from the file.
type SurfaceData struct {
	PressureCoefficients []float64
	DoubletCoefficients  []float64
	SourceCoefficients   []float64
	SurfaceVelocities    [][3]float64
}

// WriteSurface writes one step's dump of surf under kind (one of
// "non_lifting_surface", "lifting_surface", "wake") and the given
// within-body index and owning body id.
func (w *Writer) WriteSurface(bodyID, kind string, index, step int, surf geom.Surface, data SurfaceData) error {
	dir := filepath.Join(w.Dir, fmt.Sprintf("body_%s", bodyID), fmt.Sprintf("%s_%d", kind, index))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return chk.Err("logio: cannot create output directory %q:\n%v", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("step_%06d.vtk", step))
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("logio: cannot create output file %q:\n%v", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeLegacyVTK(bw, surf, data); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return chk.Err("logio: cannot flush output file %q:\n%v", path, err)
	}
	io.Pf("logio: wrote %s\n", path)
	return nil
}

// writeLegacyVTK emits surf as an ASCII VTK POLYDATA dataset, one
// POLYGONS quad per panel, with any non-nil field in data attached as
// CELL_DATA.
func writeLegacyVTK(w *bufio.Writer, surf geom.Surface, data SurfaceData) error {
	fmt.Fprintf(w, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(w, "vortexje surface dump\n")
	fmt.Fprintf(w, "ASCII\n")
	fmt.Fprintf(w, "DATASET POLYDATA\n")

	n := surf.NumNodes()
	fmt.Fprintf(w, "POINTS %d float\n", n)
	for i := 0; i < n; i++ {
		x := surf.NodePosition(i)
		fmt.Fprintf(w, "%g %g %g\n", x[0], x[1], x[2])
	}

	np := surf.NumPanels()
	total := 0
	for i := 0; i < np; i++ {
		total += 1 + len(surf.PanelNodes(i))
	}
	fmt.Fprintf(w, "POLYGONS %d %d\n", np, total)
	for i := 0; i < np; i++ {
		nodes := surf.PanelNodes(i)
		fmt.Fprintf(w, "%d", len(nodes))
		for _, idx := range nodes {
			fmt.Fprintf(w, " %d", idx)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "CELL_DATA %d\n", np)
	if data.PressureCoefficients != nil {
		writeScalars(w, "Cp", data.PressureCoefficients)
	}
	if data.DoubletCoefficients != nil {
		writeScalars(w, "mu", data.DoubletCoefficients)
	}
	if data.SourceCoefficients != nil {
		writeScalars(w, "sigma", data.SourceCoefficients)
	}
	if data.SurfaceVelocities != nil {
		writeVectors(w, "V", data.SurfaceVelocities)
	}
	return nil
}

func writeScalars(w *bufio.Writer, name string, v []float64) {
	fmt.Fprintf(w, "SCALARS %s float 1\n", name)
	fmt.Fprintf(w, "LOOKUP_TABLE default\n")
	for _, x := range v {
		fmt.Fprintf(w, "%g\n", x)
	}
}

func writeVectors(w *bufio.Writer, name string, v [][3]float64) {
	fmt.Fprintf(w, "VECTORS %s float\n", name)
	for _, x := range v {
		fmt.Fprintf(w, "%g %g %g\n", x[0], x[1], x[2])
	}
}
