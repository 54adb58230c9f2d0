// This file is part of Soundboard.
//
// Soundboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Soundboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Soundboard.  If not, see <https://www.gnu.org/licenses/>.

// Package script runs Lua cue sheets against an OKIM6295 and a Seibu ADPCM
// device. The script writes to the chips and advances time and the generated
// audio is sent to a mix.Mixer.
//
// The following functions are available to the script:
//
//	oki_write(b)            write a byte to the OKIM6295 command register
//	oki_status()            read the OKIM6295 status register
//	oki_pin7(high)          change the state of the OKIM6295 SS pin. this
//	                        changes the sample rate and so is an error
//	                        after the first advance()
//	seibu_adpcm(start, end) play a sample on the Seibu ADPCM device. the
//	                        addresses are in units of 256 bytes
//	seibu_stop()            stop the Seibu ADPCM device
//	advance(n)              generate n samples
//	elapsed()               number of samples generated so far
//	sample_rate()           the current output sample rate
//	log(s)                  write a message to the log
//
// The Seibu ADPCM device runs at the same rate as the OKIM6295 so that the
// output of both can be mixed. It reads from its own copy of the sample ROM
// so decrypting it does not affect the OKIM6295.
package script
