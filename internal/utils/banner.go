/*
 This file has implementation of the main banner for the tool. It is used in cmd/root.go
*/
package utils

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const bannerArt = `

                       _   _
  __ _ _ __ _ __   ___| |_| |
 / _` + "`" + ` | '__| '_ \ / __| __| |
| (_| | |  | | | | (__| |_| |
 \__,_|_|  |_| |_|\___|\__|_|

`

func DisplayBanner() {
	color.Magenta(strings.TrimSpace(bannerArt))
	fmt.Println()
	fmt.Println("Amazon Resource Name toolkit")
	fmt.Println("----------------------------")
}
