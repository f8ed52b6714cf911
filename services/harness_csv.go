package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xairline/xa-datarefs/models"
)

// LoadCsv seeds the harness from a csv file with a header row and the columns
// dataref,type,value. Array elements are separated by spaces.
func (h *Harness) LoadCsv(csvName string) (int, error) {
	file, err := os.Open(csvName)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", csvName, err)
	}
	defer file.Close()
	return h.ReadCsv(file)
}

func (h *Harness) ReadCsv(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	counter := 0
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return counter, err
		}
		line++
		if line == 1 {
			continue
		}

		name := strings.TrimSpace(record[0])
		var t models.DatarefType
		if err := t.UnmarshalText([]byte(record[1])); err != nil {
			return counter, fmt.Errorf("line %d: %w", line, err)
		}
		if err := h.seed(name, t, strings.TrimSpace(record[2])); err != nil {
			return counter, fmt.Errorf("line %d: %s: %w", line, name, err)
		}
		counter++
	}
	return counter, nil
}

func (h *Harness) seed(name string, t models.DatarefType, raw string) error {
	switch t {
	case models.TypeFloat:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return err
		}
		h.SetDataReff(name, float32(v))
	case models.TypeDouble:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		h.SetDataRefd(name, v)
	case models.TypeInt, models.TypeBool:
		v, err := parseIntOrBool(raw)
		if err != nil {
			return err
		}
		h.SetDataRefi(name, v)
	case models.TypeFloatArray:
		fields := strings.Fields(raw)
		values := make([]float32, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return err
			}
			values[i] = float32(v)
		}
		h.SetDataReffv(name, values)
	case models.TypeIntArray, models.TypeBoolArray:
		fields := strings.Fields(raw)
		values := make([]int, len(fields))
		for i, f := range fields {
			v, err := parseIntOrBool(f)
			if err != nil {
				return err
			}
			values[i] = v
		}
		h.SetDataRefiv(name, values)
	case models.TypeByteArray:
		fields := strings.Fields(raw)
		values := make([]byte, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return err
			}
			values[i] = byte(v)
		}
		h.SetDataRefbv(name, values)
	case models.TypeString:
		h.SetDataRefbv(name, append([]byte(raw), 0))
	}
	return nil
}

func parseIntOrBool(raw string) (int, error) {
	switch strings.ToLower(raw) {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	return strconv.Atoi(raw)
}
