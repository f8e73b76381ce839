package command

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/litescan/litescan/internal/schema"
	"github.com/litescan/litescan/internal/storage"
)

// Config is the optional yaml configuration shared by all commands.
type Config struct {
	LogLevel string `yaml:"log_level"`
}

func newLogger(configPath string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	if configPath == "" {
		return logger, nil
	}

	configFile, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer configFile.Close()

	config := &Config{}
	if err := yaml.NewDecoder(configFile).Decode(config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if config.LogLevel != "" {
		level, err := logrus.ParseLevel(config.LogLevel)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(level)
	}

	return logger, nil
}

// readRootPage reads the first page of the database file at path: the
// 100-byte file header first to learn the page size, then the remainder
// of the page.
func readRootPage(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	header := make([]byte, storage.FileHeaderSize)
	if _, err := io.ReadFull(file, header); err != nil {
		return nil, fmt.Errorf("reading file header: %w", err)
	}

	fileHeader, err := storage.ParseFileHeader(header)
	if err != nil {
		return nil, err
	}

	if int(fileHeader.PageSize) < storage.FileHeaderSize {
		return nil, fmt.Errorf("page size %d smaller than the file header: %w",
			fileHeader.PageSize, storage.ErrTruncated)
	}

	buf := make([]byte, fileHeader.PageSize)
	copy(buf, header)
	if _, err := io.ReadFull(file, buf[storage.FileHeaderSize:]); err != nil {
		return nil, fmt.Errorf("reading first page: %w", err)
	}

	return buf, nil
}

func loadCatalog(configPath, dbPath string) (*schema.Catalog, error) {
	logger, err := newLogger(configPath)
	if err != nil {
		return nil, err
	}

	buf, err := readRootPage(dbPath)
	if err != nil {
		return nil, err
	}

	return schema.LoadWithLogger(logger, buf)
}
