package ui

import "github.com/chzyer/readline"

// LinePrompter reads one line of interactive input per call. It satisfies
// the device selector's Prompter interface.
type LinePrompter struct {
	rl *readline.Instance
}

func NewLinePrompter() (*LinePrompter, error) {
	rl, err := readline.New("")
	if err != nil {
		return nil, err
	}
	return &LinePrompter{rl: rl}, nil
}

func (p *LinePrompter) PromptLine(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	return p.rl.Readline()
}

func (p *LinePrompter) Close() error {
	return p.rl.Close()
}
