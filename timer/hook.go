package timer

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/franciscoj/podium/internal/models"
)

// RunSectionCmd executes the configured hook command whenever the timer
// enters a new section. The section's name and type are exported in the
// command's environment.
func RunSectionCmd(sectionCmd string, section models.Section) error {
	if sectionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sectionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse section_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)
	cmd.Env = append(
		os.Environ(),
		"PODIUM_SECTION="+section.Name,
		"PODIUM_SECTION_TYPE="+string(section.Type),
	)

	return cmd.Run()
}
