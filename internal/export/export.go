// Package export serializes recorded frames to delimited text.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"physlab/internal/recorder"
)

// Header is the fixed column order of every export.
var Header = []string{
	"time", "positionX", "positionY", "displacement", "height",
	"velocity", "velocityX", "velocityY", "acceleration",
	"ke", "pe", "totalEnergy",
}

// WriteCSV writes the frames as comma-delimited rows with 4-decimal fixed
// point formatting. An empty frame set writes nothing.
func WriteCSV(w io.Writer, frames []recorder.Frame) error {
	if len(frames) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	row := make([]string, len(Header))
	for _, f := range frames {
		cols := []float64{
			f.Time, f.PosX, f.PosY, f.Displacement, f.Height,
			f.Velocity, f.VelX, f.VelY, f.Accel,
			f.Kinetic, f.Potential, f.Total,
		}
		for i, v := range cols {
			row[i] = strconv.FormatFloat(v, 'f', 4, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the frames to path. No file is created for an empty
// frame set.
func WriteCSVFile(path string, frames []recorder.Frame) error {
	if len(frames) == 0 {
		return nil
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, frames)
}
