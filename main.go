// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/TN-inTEC/SharepointTemplateExport-sub000/cmd"

func main() {
	cmd.Execute()
}
