/*
Package arshape is about Arabic contextual shaping with Unicode presentation forms.

Description

Arabic script is cursive: most letters connect to their neighbours, and the
shape of a letter depends on whether it connects to the letter before, the
letter after, both, or none. Fonts with OpenType tables perform this
substitution themselves, during text layout. Many rendering surfaces do not:
simple PDF writers, label printers, terminals and game engines draw one glyph
per code point. For these, text has to be converted into a sequence of
presentation forms beforehand, where every code point already denotes the
positional shape of a letter.

The Unicode Standard provides presentation forms for the letters of Arabic,
Persian and Urdu in the blocks Arabic Presentation Forms-A and -B. The joining
behaviour of letters is defined by the Joining_Type property of the Unicode
Character Database file ArabicShaping.txt.

Contents

Sub-package shaping performs the conversion, for strings and rune slices, and
as a transform.Transformer for streams of text. Command arshape (in cmd/arshape)
is a small command line interface to it.

Internal packages provide a parser for UCD files and access to UCD test data;
shaping tables are generated from UCD files by a generator in
shaping/internal/generator.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package arshape
