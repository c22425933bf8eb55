//go:build !bigintdebug

package bigint

const debug = false
