package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Console — примитивы ввода/вывода для дашбордов: подсказка, число,
// пароль без эха, подтверждение. Замена диалоговым окнам исходной системы.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Prompt читает строку; пробелы по краям отрезаются.
func (c *Console) Prompt(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *Console) PromptInt(label string) (int, error) {
	s := c.Prompt(label)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("ожидалось число, получено %q", s)
	}
	return n, nil
}

func (c *Console) PromptInt64(label string) (int64, error) {
	s := c.Prompt(label)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ожидалось число, получено %q", s)
	}
	return n, nil
}

// PromptPassword читает пароль без эха. Если stdin не терминал (пайп в
// тестах), падаем обратно на обычное чтение.
func (c *Console) PromptPassword(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(c.out)
		if err == nil {
			return strings.TrimSpace(string(b))
		}
	}
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// Confirm — вопрос «да/нет»; по умолчанию нет.
func (c *Console) Confirm(label string) bool {
	ans := strings.ToLower(c.Prompt(label + " (y/n)"))
	return ans == "y" || ans == "yes" || ans == "д" || ans == "да"
}

// ShowError — модальное уведомление исходной системы в консольном виде:
// операция остаётся на экране, приложение живёт дальше.
func (c *Console) ShowError(op string, err error) {
	fmt.Fprintf(c.out, "⚠️ %s: %v\n", op, err)
}

func (c *Console) ShowOK(msg string) {
	fmt.Fprintf(c.out, "✅ %s\n", msg)
}
