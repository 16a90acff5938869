package tools

import (
	"fmt"
	"reflect"

	"github.com/xuri/excelize/v2"
)

const ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type column struct {
	index  []int
	header string
}

// columns 按 `excel` 标签收集导出列，"-" 表示跳过，未写标签时使用字段名
func columns(t reflect.Type, parent []int) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int(nil), parent...), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			cols = append(cols, columns(sf.Type, idx)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		header := sf.Tag.Get("excel")
		if header == "-" {
			continue
		}
		if header == "" {
			header = sf.Name
		}
		cols = append(cols, column{index: idx, header: header})
	}
	return cols
}

// WriteSheet 把结构体切片写入工作表，第一行为表头；rows 为空时只写表头
func WriteSheet[T any](f *excelize.File, sheet string, rows []T) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%s 不是结构体类型", t)
	}
	if sheet == "" {
		sheet = "Sheet1"
	}
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	cols := columns(t, nil)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c.header
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range rows {
		v := reflect.ValueOf(row)
		values := make([]any, len(cols))
		for i, c := range cols {
			values[i] = v.FieldByIndex(c.index).Interface()
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
