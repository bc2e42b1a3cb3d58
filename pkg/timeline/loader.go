package timeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFromFiles applies optional catalog overrides on top of the built-in
// registry. The CSV carries growth durations only; overridden plants keep
// their existing key activities and climate table (or inherit the defaults
// when the plant is new). Either path may be empty.
func LoadFromFiles(r *Registry, csvPath, xlsxPath string) error {
	if csvPath != "" {
		if err := r.loadCSV(csvPath); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		if err := r.loadXLSX(xlsxPath); err != nil {
			return err
		}
	}
	return nil
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // strip a UTF-8 BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type catalogColumns struct {
	plant, sow, grow, window int
}

func mapColumns(head []string) (catalogColumns, error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cols := catalogColumns{
		plant:  findAny("Plant", "name", "species"),
		sow:    findAny("SowToSeedlingDays", "sow_days", "sowtoseedling"),
		grow:   findAny("SeedlingToHarvestDays", "grow_days", "seedlingtoharvest"),
		window: findAny("HarvestWindowDays", "window_days", "harvestwindow"),
	}
	if cols.plant == -1 || cols.sow == -1 || cols.grow == -1 {
		return cols, fmt.Errorf("timeline catalog missing required columns, found headers: %v", head)
	}
	return cols, nil
}

func (r *Registry) applyRow(cols catalogColumns, rec []string) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	name := get(cols.plant)
	if name == "" {
		return
	}
	sow, _ := strconv.Atoi(get(cols.sow))
	grow, _ := strconv.Atoi(get(cols.grow))
	if sow <= 0 || grow <= 0 {
		return // skip invalid rows
	}

	tl := r.Lookup(name) // existing entry or the default template
	tl.SowToSeedlingDays = sow
	tl.SeedlingToHarvestDays = grow
	if w, err := strconv.Atoi(get(cols.window)); err == nil && w > 0 {
		tl.HarvestWindowDays = w
	}
	r.Register(name, tl)
}

func (r *Registry) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}
	cols, err := mapColumns(head)
	if err != nil {
		return err
	}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		r.applyRow(cols, rec)
	}
	return nil
}

func (r *Registry) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	rows, err := x.GetRows(x.GetSheetName(0))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	cols, err := mapColumns(rows[0])
	if err != nil {
		return err
	}
	for _, rec := range rows[1:] {
		r.applyRow(cols, rec)
	}
	return nil
}
