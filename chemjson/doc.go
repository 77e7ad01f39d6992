/*
 * doc.go, part of gochem.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package chemjson implements serializacion and unserialization of
//goChem structures. A structure is written as a stream of JSON lines: one header
//with the number of atoms and the (optional) cell and periodicity, one line per atom,
//and one line per set of atomic coordinates. The format is meant for the communication
//of goChem programs with other, independent programs, for instance, via UNIX pipes.
package chemjson
