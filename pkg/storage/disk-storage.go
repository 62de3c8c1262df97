package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/matst80/slask-catalog/pkg/types"
)

type DiskStorage struct {
	Country    string
	RootFolder string
}

func NewDiskStorage(country, rootFolder string) *DiskStorage {
	return &DiskStorage{
		Country:    country,
		RootFolder: rootFolder,
	}
}

func (d *DiskStorage) GetFileName(name string) (string, string) {
	fileName := path.Join(d.RootFolder, d.Country, name)
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}

// LoadProducts reads the line delimited catalog file, one product per
// line. The catalog is small enough to reload on every call, nothing
// is cached.
func (d *DiskStorage) LoadProducts(name string) ([]types.Product, error) {
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog source %s: %w", name, types.ErrNotFound)
		}
		return nil, err
	}
	defer file.Close()

	products := make([]types.Product, 0)
	scanner := bufio.NewScanner(file)
	// records stay well under this, the default 64KB cap does not
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var p types.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, &types.ParseError{Line: line, Err: err}
		}
		products = append(products, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProducts writes products in the same line delimited form the
// loader reads, through a temp file renamed into place.
func (d *DiskStorage) SaveProducts(products []types.Product, name string) error {
	fileName, tmpFileName := d.GetFileName(name)

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(file)
	for i := range products {
		if err = enc.Encode(&products[i]); err != nil {
			break
		}
	}
	file.Close()
	if err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}

	return os.Rename(tmpFileName, fileName)
}

func (d *DiskStorage) SaveJson(data any, name string) error {
	fileName, tmpFileName := d.GetFileName(name)

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}

	err = json.NewEncoder(file).Encode(data)
	file.Close()
	if err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}

	return os.Rename(tmpFileName, fileName)
}

func (d *DiskStorage) LoadJson(data any, name string) error {
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(data)
}
