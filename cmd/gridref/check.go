package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gridref/internal/a1"
	"gridref/internal/diag"
	"gridref/internal/observ"
	"gridref/internal/ui"
	"gridref/internal/workbook"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file>...",
	Short: "Batch-validate reference lists",
	Long: `Check reads files with one reference per line (blank lines and #-comments
are skipped), validates every reference against the workbook context and
reports diagnostics with line positions`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max concurrent files (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-ui", false, "disable the interactive progress view")
}

type checkFileResult struct {
	path string
	refs int
	bag  *diag.Bag
}

// checkLine валидирует одну строку файла; пустые строки и комментарии
// пропускаются (refs не растёт).
func checkLine(text string, line int, path string, wb *workbook.Workbook, bag *diag.Bag) bool {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return false
	}
	if _, err := a1.ParseSelection(text, wb.DefaultSheet, wb.Context); err != nil {
		bag.Add(diag.FromError(err, text).At(path, line))
	}
	return true
}

func checkFile(path string, wb *workbook.Workbook, maxDiag int) checkFileResult {
	res := checkFileResult{path: path, bag: diag.NewBag(maxDiag)}
	data, err := os.ReadFile(path)
	if err != nil {
		res.bag.Add(diag.NewError(diag.IOReadFailed, err.Error()).At(path, 0))
		return res
	}
	for i, line := range strings.Split(string(data), "\n") {
		if checkLine(line, i+1, path, wb, res.bag) {
			res.refs++
		}
	}
	return res
}

// checkFiles обходит файлы параллельно. events может быть nil.
func checkFiles(ctx context.Context, files []string, wb *workbook.Workbook, maxDiag, jobs int, events chan<- ui.Event) []checkFileResult {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]checkFileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if events != nil {
				events <- ui.Event{Path: path, Status: ui.StatusChecking}
			}
			res := checkFile(path, wb, maxDiag)
			results[i] = res
			if events != nil {
				ev := ui.Event{Path: path, Status: ui.StatusOK, Detail: fmt.Sprintf("%d refs", res.refs)}
				if res.bag.HasErrors() {
					ev.Status = ui.StatusFailed
					ev.Detail = fmt.Sprintf("%d errors", res.bag.Len())
				}
				events <- ev
			}
			return nil
		})
	}
	// Единственная ошибка группы — отмена контекста; результаты
	// по уже обойдённым файлам остаются пригодными.
	_ = g.Wait()
	return results
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noUI, _ := cmd.Flags().GetBool("no-ui")

	timer := observ.NewTimer()
	wbPhase := timer.Begin("workbook")
	wb, err := loadWorkbook(cmd)
	if err != nil {
		return err
	}
	timer.End(wbPhase, "")

	maxDiag := maxDiagnostics(cmd)
	showUI := !noUI && !isQuiet(cmd) && isTerminal(os.Stdout)

	checkPhase := timer.Begin("check")
	var results []checkFileResult
	if showUI {
		results = runCheckWithUI(cmd.Context(), args, wb, maxDiag, jobs)
	} else {
		results = checkFiles(cmd.Context(), args, wb, maxDiag, jobs, nil)
	}
	totalRefs := 0
	for _, res := range results {
		totalRefs += res.refs
	}
	timer.End(checkPhase, fmt.Sprintf("%d refs", totalRefs))

	bag := diag.NewBag(maxDiag)
	for _, res := range results {
		bag.Merge(res.bag)
	}

	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "checked %d file(s), %d reference(s)\n", len(results), totalRefs)
	}
	printTimings(cmd, timer)
	return reportBag(cmd, bag)
}

func runCheckWithUI(ctx context.Context, files []string, wb *workbook.Workbook, maxDiag, jobs int) []checkFileResult {
	events := make(chan ui.Event, 256)
	done := make(chan []checkFileResult, 1)

	go func() {
		done <- checkFiles(ctx, files, wb, maxDiag, jobs, events)
		close(events)
	}()

	model := ui.NewCheckModel("checking references", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		// Интерактивный вид не обязателен: проверка уже идёт,
		// просто дожидаемся результатов без него.
		for range events {
		}
	}
	return <-done
}
