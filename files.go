package treebench

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func datasetFilename(dataDir string, index int) string {
	return filepath.Join(dataDir, fmt.Sprintf("%06d.keys", index))
}

func datasetInfoFilename(dataDir string) string {
	return filepath.Join(dataDir, "dataset_info.json")
}

// DatasetInfo describes a directory of pre-generated datasets. Dataset i
// was generated with seed Seed+i.
type DatasetInfo struct {
	Count int    `json:"count"`
	Size  int    `json:"size"`
	Seed  uint64 `json:"seed"`
}

func writeDatasetInfo(dataDir string, info DatasetInfo) error {
	bz, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("error marshaling info file: %w", err)
	}
	return os.WriteFile(datasetInfoFilename(dataDir), bz, 0o644)
}

// ReadDatasetInfo loads the info sidecar of a dataset directory.
func ReadDatasetInfo(dataDir string) (DatasetInfo, error) {
	bz, err := os.ReadFile(datasetInfoFilename(dataDir))
	if err != nil {
		return DatasetInfo{}, fmt.Errorf("error reading info file: %w", err)
	}
	var info DatasetInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		return DatasetInfo{}, fmt.Errorf("error unmarshaling info file: %w", err)
	}
	return info, nil
}

// WriteDatasets generates count datasets of size keys, seeds seed..seed+count-1,
// and writes them to dataDir as little-endian int64 streams plus an info
// sidecar.
func WriteDatasets(dataDir string, count, size int, seed uint64) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		ds, err := DatasetGenerator{Size: size, Seed: seed + uint64(i)}.Generate()
		if err != nil {
			return fmt.Errorf("error generating dataset %d: %w", i, err)
		}
		if err := writeDataset(datasetFilename(dataDir, i), ds); err != nil {
			return fmt.Errorf("error writing dataset %d: %w", i, err)
		}
	}
	return writeDatasetInfo(dataDir, DatasetInfo{Count: count, Size: size, Seed: seed})
}

func writeDataset(filename string, ds *Dataset) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, ds.Keys); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadDataset loads dataset index from dataDir.
func ReadDataset(dataDir string, index int) (*Dataset, error) {
	info, err := ReadDatasetInfo(dataDir)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= info.Count {
		return nil, fmt.Errorf("dataset index %d out of range [0, %d)", index, info.Count)
	}
	f, err := os.Open(datasetFilename(dataDir, index))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	keys := make([]int64, info.Size)
	if err := binary.Read(bufio.NewReader(f), binary.LittleEndian, keys); err != nil {
		return nil, fmt.Errorf("error reading dataset %d: %w", index, err)
	}
	return &Dataset{Seed: info.Seed + uint64(index), Keys: keys}, nil
}
