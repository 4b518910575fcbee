/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/dburkart/skywatch/cmd/skywatch"
)

func main() {
	skywatch.Execute()
}
