// Package trackers implements Trackers, which track and save data in
// an experiment
package trackers

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"

	ts "github.com/samuelfneumann/farl/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// saveData gob encodes data to a new file at filename
func saveData(filename string, data interface{}) error {
	// Open the file to save to
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not open save file")
	}
	defer file.Close()

	// Encode and save the file
	if err := gob.NewEncoder(file).Encode(data); err != nil {
		return errors.Wrap(err, "could not encode data")
	}
	return nil
}

// LoadData loads and returns the data saved by a Return Tracker
func LoadData(filename string) ([]float64, error) {
	var data []float64
	if err := loadData(filename, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// LoadLengths loads and returns the data saved by an EpisodeLength
// Tracker
func LoadLengths(filename string) ([]int, error) {
	var data []int
	if err := loadData(filename, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func loadData(filename string, data interface{}) error {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "could not open data file")
	}
	defer file.Close()

	// Decode the data
	if err := gob.NewDecoder(file).Decode(data); err != nil {
		return errors.Wrap(err, "could not decode data")
	}
	return nil
}
