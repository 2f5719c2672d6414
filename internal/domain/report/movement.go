// Package report deriva el reporte de movimientos de stock a partir del log
// de actividades. No mantiene estado propio: es re-derivable en cualquier
// momento desde el log más el snapshot actual del catálogo.
package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// CategoryAll desactiva el filtro por categoría.
const CategoryAll = "all"

// Filter acota el reporte. Start/End son inclusivos; un extremo nil queda
// sin restricción. Category vacío equivale a CategoryAll.
type Filter struct {
	Start    *time.Time
	End      *time.Time
	Category string
}

// Movement es un movimiento individual: la entrada de log que lo originó,
// el nombre del producto resuelto y la cantidad con signo.
type Movement struct {
	Log         entity.ActivityLog `json:"log"`
	ProductName string             `json:"productName"`
	Quantity    int                `json:"quantity"`
}

// Result agrega entradas, salidas y balance del período, más el detalle
// ordenado por timestamp descendente.
type Result struct {
	Entries   int        `json:"entries"`
	Exits     int        `json:"exits"`
	Balance   int        `json:"balance"`
	Movements []Movement `json:"movements"`
}

// DayRange construye los extremos del filtro a partir de fechas de calendario
// "2006-01-02": el inicio a las 00:00:00.000 y el fin a las 23:59:59.999 del
// día indicado. Una fecha vacía o mal formada deja ese extremo sin restricción.
func DayRange(startDate, endDate string, loc *time.Location) (start, end *time.Time) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation("2006-01-02", startDate, loc); err == nil {
		s := t
		start = &s
	}
	if t, err := time.ParseInLocation("2006-01-02", endDate, loc); err == nil {
		e := t.Add(24*time.Hour - time.Millisecond)
		end = &e
	}
	return start, end
}

// Build computa el reporte de movimientos.
//
// Sólo cuentan las acciones UPDATE_PRODUCT_QUANTITY y DELETE_PRODUCT dentro
// del rango. El movimiento de una actualización es new−old (valores coercidos
// a numérico, 0 si no parsean); el de una deleción es −old: la cantidad que
// existía al eliminar se trata como salida completa. Movimientos cero no
// entran al detalle ni a los acumuladores.
//
// La categoría se resuelve buscando el *nombre actual* del producto en el
// catálogo (el log guarda nombres, no IDs): un producto renombrado o
// eliminado después del evento no matchea y sólo aparece con el filtro
// CategoryAll. Limitación conocida del producto, preservada a propósito.
func Build(logs []entity.ActivityLog, products []entity.Product, f Filter) Result {
	category := f.Category
	if category == "" {
		category = CategoryAll
	}

	byName := make(map[string]string, len(products)) // nombre -> categoría
	for _, p := range products {
		byName[p.Name] = p.Category
	}

	res := Result{Movements: []Movement{}}
	for _, log := range logs {
		if log.Action != entity.ActionUpdateProductQuantity && log.Action != entity.ActionDeleteProduct {
			continue
		}
		if f.Start != nil && log.Timestamp.Before(*f.Start) {
			continue
		}
		if f.End != nil && log.Timestamp.After(*f.End) {
			continue
		}

		productName := log.Details
		if category != CategoryAll {
			productCategory, ok := byName[productName]
			if !ok || productCategory != category {
				continue
			}
		}

		var movement int
		switch log.Action {
		case entity.ActionUpdateProductQuantity:
			movement = toInt(log.NewValue) - toInt(log.OldValue)
		case entity.ActionDeleteProduct:
			movement = -toInt(log.OldValue)
		}

		if movement > 0 {
			res.Entries += movement
		} else if movement < 0 {
			res.Exits += -movement
		}
		if movement != 0 {
			res.Movements = append(res.Movements, Movement{
				Log:         log,
				ProductName: productName,
				Quantity:    movement,
			})
		}
	}

	res.Balance = res.Entries - res.Exits
	sort.SliceStable(res.Movements, func(i, j int) bool {
		return res.Movements[i].Log.Timestamp.After(res.Movements[j].Log.Timestamp)
	})
	return res
}

// toInt coerciona el valor textual del log a entero; 0 si no parsea.
func toInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
