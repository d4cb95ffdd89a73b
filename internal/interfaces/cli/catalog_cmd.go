package cli

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
)

type categoryList []dto.CategoryResponse

func (l categoryList) table() table {
	t := table{header: []string{"ID", "NAME"}}
	for _, c := range l {
		t.rows = append(t.rows, []string{c.ID, c.Name})
	}
	return t
}

func runCategories(ctx context.Context, a *App, args []string) error {
	if len(args) > 0 {
		return usagef("categories no recibe argumentos")
	}
	items, err := a.deps.Categories.ListCategories(ctx)
	if err != nil {
		return err
	}
	l := categoryList(items)
	return a.render(l, l.table)
}

func runDashboard(ctx context.Context, a *App, args []string) error {
	if len(args) > 0 {
		return usagef("dashboard no recibe argumentos")
	}
	d, err := a.deps.Dashboard.GetSummary(ctx)
	if err != nil {
		return err
	}
	if d.Notice != nil && a.format == formatTable {
		fmt.Fprintf(a.out, "[%s] %s\n", d.Notice.Severity, d.Notice.Message)
		return nil
	}
	return a.render(d, func() table {
		t := table{header: []string{"METRIC", "VALUE"}}
		for _, s := range d.Stats {
			t.rows = append(t.rows, []string{s.Title, s.Value})
		}
		if d.Brand != nil {
			t.rows = append(t.rows,
				[]string{"Store", d.Brand.Name},
				[]string{"Status", d.Brand.Status},
				[]string{"Commission", d.Brand.CommissionRate},
			)
		}
		for _, m := range d.MonthlySales {
			t.rows = append(t.rows, []string{"Sales " + m.Month, m.Sales.String()})
		}
		return t
	})
}
