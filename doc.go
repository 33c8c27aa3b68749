// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package allencell holds biophysical single-cell models from the
[Allen Cell Types Database](https://celltypes.brain-map.org), set up for
a compartmental simulation engine.

Each model loads a reconstructed morphology, replaces its axon with a
two-section stub, inserts ion-channel mechanisms and applies the fitted
per-region parameters:

  - compart: sections, mechanisms and the engine that owns them
  - morph: the classified morphology tree and its loader
  - neuron473871429: model 473871429, with a command of the same name
*/
package allencell
