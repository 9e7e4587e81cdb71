package smoketest

import (
	"context"
	"fmt"
	"io"
)

// Run performs one fetch and prints the outcome to out, or the failure to errOut.
// Failures are printed, not returned, so the smoke test always exits normally.
func Run(ctx context.Context, c IClient, vendorID string, out, errOut io.Writer) {
	resp, err := c.FetchServiceRequests(ctx, vendorID)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %s\n", err.Error())
		return
	}

	fmt.Fprintf(out, "Status: %d\n", resp.StatusCode)
	fmt.Fprintf(out, "Response:\n%s\n", resp.Body)
}
