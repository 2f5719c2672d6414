// Package excel implementa la exportación de productos a planilla en formato
// SpreadsheetML (Excel 2003 XML), que Excel y LibreOffice abren directamente.
package excel

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/tu-usuario/estoque-pro/internal/application/ports"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

var _ ports.ProductExporter = (*SpreadsheetExporter)(nil)

const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	nsOffice      = "urn:schemas-microsoft-com:office:office"
	nsExcel       = "urn:schemas-microsoft-com:office:excel"
)

// SpreadsheetExporter genera la planilla de productos como documento
// SpreadsheetML.
type SpreadsheetExporter struct{}

// NewSpreadsheetExporter construye el exportador.
func NewSpreadsheetExporter() *SpreadsheetExporter { return &SpreadsheetExporter{} }

// ExportProducts serializa la tabla de productos en la hoja "Produtos".
func (g *SpreadsheetExporter) ExportProducts(_ context.Context, products []entity.Product) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	workbook := doc.CreateElement("Workbook")
	workbook.CreateAttr("xmlns", nsSpreadsheet)
	workbook.CreateAttr("xmlns:ss", nsSpreadsheet)
	workbook.CreateAttr("xmlns:o", nsOffice)
	workbook.CreateAttr("xmlns:x", nsExcel)

	// Estilo del encabezado de la tabla.
	styles := workbook.CreateElement("Styles")
	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", "header")
	font := header.CreateElement("Font")
	font.CreateAttr("ss:Bold", "1")

	worksheet := workbook.CreateElement("Worksheet")
	worksheet.CreateAttr("ss:Name", "Produtos")
	table := worksheet.CreateElement("Table")

	headerRow := table.CreateElement("Row")
	for _, label := range []string{
		"Nome", "Categoria", "Quantidade", "Preço de Custo",
		"Localização", "Descrição", "Última Atualização",
	} {
		cell := headerRow.CreateElement("Cell")
		cell.CreateAttr("ss:StyleID", "header")
		addData(cell, "String", label)
	}

	for _, p := range products {
		row := table.CreateElement("Row")
		addData(row.CreateElement("Cell"), "String", p.Name)
		addData(row.CreateElement("Cell"), "String", p.Category)
		addData(row.CreateElement("Cell"), "Number", fmt.Sprintf("%d", p.Quantity))
		addData(row.CreateElement("Cell"), "Number", p.CostPrice.StringFixed(2))
		addData(row.CreateElement("Cell"), "String", p.Location)
		addData(row.CreateElement("Cell"), "String", p.Description)
		addData(row.CreateElement("Cell"), "String", p.LastUpdated.Format("02/01/2006 15:04"))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar planilla: %w", err)
	}
	return out, nil
}

func addData(cell *etree.Element, ssType, value string) {
	data := cell.CreateElement("Data")
	data.CreateAttr("ss:Type", ssType)
	data.SetText(value)
}
