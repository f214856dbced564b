package main

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/tablemap"
	"github.com/gostonefire/tablemap/config"
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/logutil"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"strings"
)

// openFile - Opens the keys file, replaced in tests
var openFile = func(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

type runOptions struct {
	configPath   string
	keysPath     string
	eraseEvery   int
	distribution bool
}

// report - What the run command prints
type report struct {
	Technique string        `yaml:"technique"`
	MaxLoad   uint8         `yaml:"maxLoad"`
	Keys      int           `yaml:"keys"`
	Erased    int           `yaml:"erased"`
	Stat      tablemap.Stat `yaml:"stat"`
}

// workload - The operations the run command needs from either kind of map
type workload interface {
	insert(key string, value int) error
	eraseKey(key string) (int, error)
	stat(includeDistribution bool) tablemap.Stat
	params() tablemap.StorageParameters
	release()
}

type chainedWorkload struct {
	m *tablemap.HashMap[string, int]
}

func (C chainedWorkload) insert(key string, value int) error {
	_, _, err := C.m.InsertOrAssign(key, value)
	return err
}

func (C chainedWorkload) eraseKey(key string) (int, error) {
	return C.m.EraseKey(key), nil
}

func (C chainedWorkload) stat(includeDistribution bool) tablemap.Stat {
	return C.m.Stat(includeDistribution)
}

func (C chainedWorkload) params() tablemap.StorageParameters {
	return C.m.GetStorageParameters()
}

func (C chainedWorkload) release() {
	C.m.Release()
}

type openWorkload struct {
	m *tablemap.OpenMap[string, int]
}

func (O openWorkload) insert(key string, value int) error {
	_, _, err := O.m.InsertOrAssign(key, value)
	return err
}

func (O openWorkload) eraseKey(key string) (int, error) {
	return O.m.EraseKey(key)
}

func (O openWorkload) stat(includeDistribution bool) tablemap.Stat {
	return O.m.Stat(includeDistribution)
}

func (O openWorkload) params() tablemap.StorageParameters {
	return O.m.GetStorageParameters()
}

func (O openWorkload) release() {
	O.m.Release()
}

// run - Loads configuration and keys, fills the table and writes the report to out
func (R runOptions) run(out io.Writer) (err error) {
	cfg := config.Default()
	if R.configPath != "" {
		cfg, err = config.Load(R.configPath)
		if err != nil {
			return
		}
	}

	if R.eraseEvery < 0 {
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("erase-every can not be negative, got %d", R.eraseEvery)}
		return
	}

	logger, err := logutil.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return
	}
	defer func() { _ = logger.Sync() }()

	keys, err := readKeys(R.keysPath)
	if err != nil {
		return
	}

	w, err := newWorkload(cfg.Table, logger)
	if err != nil {
		return
	}
	defer w.release()

	for i, key := range keys {
		err = w.insert(key, i+1)
		if err != nil {
			err = fmt.Errorf("error while inserting key #%d: %w", i+1, err)
			return
		}
	}

	var erased int
	if R.eraseEvery > 0 {
		for i := R.eraseEvery - 1; i < len(keys); i += R.eraseEvery {
			var n int
			n, err = w.eraseKey(keys[i])
			if err != nil {
				err = fmt.Errorf("error while erasing key #%d: %w", i+1, err)
				return
			}
			erased += n
		}
	}

	logger.Info("workload loaded", zap.Int("keys", len(keys)), zap.Int("erased", erased))

	sp := w.params()
	rep := report{
		Technique: crt.Name(sp.CollisionResolutionTechnique),
		MaxLoad:   sp.MaxLoad,
		Keys:      len(keys),
		Erased:    erased,
		Stat:      w.stat(R.distribution),
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	err = enc.Encode(rep)
	if err != nil {
		err = fmt.Errorf("error while writing report: %w", err)
		return
	}

	err = enc.Close()

	return
}

// newWorkload - Builds the map kind the configured technique asks for
func newWorkload(table config.Table, logger *zap.Logger) (w workload, err error) {
	technique, err := table.TechniqueID()
	if err != nil {
		return
	}

	opts := []tablemap.Option{tablemap.WithConfig(table), tablemap.WithLogger(logger)}

	switch technique {
	case crt.LinearProbing:
		var m *tablemap.OpenMap[string, int]
		m, err = tablemap.NewOpenMap[string, int](hashfunc.String[string]{}, opts...)
		w = openWorkload{m: m}
	default:
		var m *tablemap.HashMap[string, int]
		m, err = tablemap.NewHashMap[string, int](hashfunc.String[string]{}, opts...)
		w = chainedWorkload{m: m}
	}

	return
}

// readKeys - Returns every non-blank line of the named file with surrounding white space removed
func readKeys(name string) (keys []string, err error) {
	f, err := openFile(name)
	if err != nil {
		err = fmt.Errorf("error while opening keys file: %w", err)
		return
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			keys = append(keys, line)
		}
	}

	err = scanner.Err()
	if err != nil {
		err = fmt.Errorf("error while reading keys file: %w", err)
	}

	return
}
