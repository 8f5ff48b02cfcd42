package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/salesboard/salesboard/internal/dto"
	"github.com/salesboard/salesboard/internal/models"
)

// exportAnalytics is the analytics interface used by exportService.
type exportAnalytics interface {
	Summary(ctx context.Context, q dto.OrderQuery) (dto.SummaryResult, error)
	Orders(ctx context.Context, q dto.OrderQuery) ([]models.Order, error)
}

type exportService struct {
	store     snapshotReader
	analytics exportAnalytics
}

func NewExportService(store snapshotReader, analytics exportAnalytics) *exportService {
	return &exportService{store: store, analytics: analytics}
}

const exportSheet = "Orders"

var exportColumns = []string{"Order ID", "Order Date", "Customer ID", "Product(s)", "Category", "Total"}

// ExportOrders builds an xlsx workbook of the filtered rows, headed by a
// short summary of the active filter and its totals.
func (s *exportService) ExportOrders(ctx context.Context, params dto.FilterParams) (dto.ExportResult, error) {
	var result dto.ExportResult

	q, err := resolveQuery(s.store.Snapshot(), params)
	if err != nil {
		return result, err
	}

	sum, err := s.analytics.Summary(ctx, q)
	if err != nil {
		return result, err
	}
	orders, err := s.analytics.Orders(ctx, q)
	if err != nil {
		return result, err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", exportSheet)

	from, to := formatBound(q.Start), formatBound(q.End)
	header := [][]any{
		{"Sales Report"},
		{"Date Range", fmt.Sprintf("%s to %s", from, to)},
		{"Category", q.Category},
		{"Total Revenue", formatUSD(sum.Revenue)},
		{"Orders", sum.Count},
	}
	row := 1
	for _, cells := range header {
		if err := setRow(f, row, cells); err != nil {
			return result, err
		}
		row++
	}

	// blank spacer row between the summary block and the table
	row++
	headerCells := make([]any, len(exportColumns))
	for i, c := range exportColumns {
		headerCells[i] = c
	}
	if err := setRow(f, row, headerCells); err != nil {
		return result, err
	}
	row++

	for _, o := range orders {
		cells := []any{o.OrderID, o.RawDate, o.CustomerID, o.ProductNames, o.Category, formatUSD(o.Total)}
		if err := setRow(f, row, cells); err != nil {
			return result, err
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return result, err
	}

	result.Filename = "orders.xlsx"
	if from != "" && to != "" {
		result.Filename = fmt.Sprintf("orders_%s_%s.xlsx", from, to)
	}
	result.Content = buf.Bytes()
	return result, nil
}

func setRow(f *excelize.File, row int, cells []any) error {
	for col, v := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, name, v); err != nil {
			return err
		}
	}
	return nil
}
