package board

import (
	"slices"
	"testing"

	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

func TestFilter(t *testing.T) {
	all := FromLines(slices.Values(sampleLines)).All()

	tests := []struct {
		name string
		opts FilterOptions
		want []string
	}{
		{"no filter", FilterOptions{}, []string{"first open", "shipped", "nearly", "second open", "unsure one", "also shipped - with dash", "third open"}},
		{"by status", FilterOptions{Statuses: []task.Status{task.Done}}, []string{"shipped", "also shipped - with dash"}},
		{"two statuses keep file order", FilterOptions{Statuses: []task.Status{task.Unsure, task.AlmostDone}}, []string{"nearly", "unsure one"}},
		{"search case-insensitive", FilterOptions{Search: "SHIPPED"}, []string{"shipped", "also shipped - with dash"}},
		{"status and search", FilterOptions{Statuses: []task.Status{task.NotDone}, Search: "second"}, []string{"second open"}},
		{"no match", FilterOptions{Search: "zzz"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.opts)
			var descs []string
			for _, tk := range got {
				descs = append(descs, tk.Description)
			}
			if !slices.Equal(descs, tt.want) {
				t.Errorf("Filter = %v, want %v", descs, tt.want)
			}
		})
	}
}
