// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package entropy provides seed material for the generators in this module.

Read first tries the operating system entropy source and, should that fail
for any reason, silently falls back to a private non-cryptographic generator.
It therefore never fails.

On Linux the OS source is the getrandom(2) system call, with /dev/urandom as
a secondary source when the call is unsupported or the kernel pool is not yet
initialized.  Other Unix systems read /dev/urandom directly.  Systems without
either always use the fallback.

# Fallback Generator

The fallback is a process-wide PCG32 seeded once, on first use, from the
current time combined with the address of a function and of a stack
variable.  On systems with address space layout randomization this provides
a little more variation than the time alone, but it is weak: with ASLR
disabled or in a hardened environment the seed may be predictable.  The
fallback exists so seeding always succeeds and makes no attempt at
cryptographic security.
*/
package entropy
