//go:build bigintdebug

package bigint

const debug = true
