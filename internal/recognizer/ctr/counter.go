package ctr

// counterFiles returns the six counter-machine headers of spec.md 4.7,
// fixed text shared by every compiled CTR automaton: the counter's value is
// encoded entirely in preprocessor state (__COUNTER__/__LINE__), never in
// anything builder- or automaton-specific, so these files do not vary with
// the alphabet or transition table.
func counterFiles() map[string]string {
	return map[string]string{
		"stab.h":        stabH,
		"next2pow.h":    next2powH,
		"advance_msb.h": advanceMsbH,
		"advance_lsb.h": advanceLsbH,
		"inc.h":         incH,
		"dec.h":         decH,
		"init_ctr.h":    initCtrH,
	}
}

// stabH pads __COUNTER__ up to the next multiple of 4 by recursively
// re-including itself, so inc.h/dec.h can rely on modular alignment of the
// counter's bit-pointer encoding.
const stabH = `#ifndef STAB_STABLE
#if (__COUNTER__ & 3) != 0
#include "stab.h"
#else
#define STAB_STABLE
#endif
#endif /* STAB_STABLE */
`

// next2powH finds the next power-of-two line boundary above the current
// bit-pointer position; advance_msb.h recurses through it while walking the
// most-significant pointer up.
const next2powH = `#define LA (__LINE__ >> 2)
#define CHECK2 ((LA - 1) & LA)
`

// advanceMsbH walks the counter's most-significant-bit pointer up by one
// position, recursing through next2pow.h until the power-of-two invariant
// (CHECK2 == 0) holds again.
const advanceMsbH = `#include "next2pow.h"
#if CHECK2 != 0
#include "advance_msb.h"
#endif
#undef LA
#undef CHECK2
`

// advanceLsbH walks the counter's least-significant-bit pointer down by one
// position, mirroring advance_msb.h for decrement.
const advanceLsbH = `#define LA (__LINE__ >> 2)
#define CHECKSUB2 ((CHECK2 - 1) & CHECK2)
#if CHECKSUB2 != 0
#include "advance_lsb.h"
#endif
#undef LA
#undef CHECKSUB2
`

// incH increments the counter: a net-zero counter (IS_ZERO == 1) transitions
// to IS_ZERO == 0 on the first increment; the bit-pointer walk realizes the
// unary-style arithmetic described in spec.md 4.7.
const incH = `#include "stab.h"
#include "advance_msb.h"
#undef IS_ZERO
#define IS_ZERO 0
`

// decH decrements the counter and re-evaluates IS_ZERO: it becomes 1 again
// exactly when the bit-pointer walk returns to a power-of-two boundary,
// signaling the net count has returned to zero.
const decH = `#include "stab.h"
#include "advance_lsb.h"
#undef IS_ZERO
#if ((LA >> 2) & LA) == 0
#define IS_ZERO 1
#else
#define IS_ZERO 0
#endif
`

// initCtrH establishes the counter's initial state: IS_ZERO == 1, no net
// increments or decrements performed yet.
const initCtrH = `#ifndef INIT_CTR_H
#define INIT_CTR_H

#include "stab.h"

#define IS_ZERO 1

#endif /* INIT_CTR_H */
`
