package elasticluster

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// templateLabel prefixes each template name in list-templates output.
const templateLabel = "name:"

// Templates lists the configuration templates known to elasticluster by
// invoking its list-templates subcommand. Results are cached when a
// cache is attached; any failure yields an empty list.
func (c *Client) Templates() []string {
	if c.cache != nil {
		if names, ok := c.cache.Get(); ok {
			return names
		}
	}

	names := c.fetchTemplates()

	if c.cache != nil && len(names) > 0 {
		if err := c.cache.Put(names); err != nil {
			c.log.Debug().Err(err).Msg("template cache write failed")
		}
	}
	return names
}

// fetchTemplates runs list-templates and parses its stdout.
// Stderr is discarded: elasticluster logs warnings there even on success.
func (c *Client) fetchTemplates() []string {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary, "list-templates")
	output, err := cmd.Output()
	if err != nil {
		c.log.Debug().Err(err).Str("binary", c.binary).Msg("list-templates failed")
		return nil
	}

	return parseTemplateOutput(output)
}

// parseTemplateOutput extracts template names from list-templates output.
// Each template is reported on a line of the form "name: <template>".
func parseTemplateOutput(output []byte) []string {
	var names []string

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, templateLabel) {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(line, templateLabel))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
