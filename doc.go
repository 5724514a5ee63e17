// MIT License
//
// Copyright (c) 2018 Master.G
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

/*
	A build tool that compiles EJB 1.1 stubs and skeletons for the iPlanet
	Application Server. The beans to process are described by the standard
	EJB 1.1 XML descriptor and the iAS-specific XML descriptor, so a single
	run conveniently covers every bean in a deployment. Run it as
		iasejbc --ejb-descriptor ejb-jar.xml --ias-descriptor ias-ejb-jar.xml --dest build/classes
	or put the attributes in a YAML task file and run
		iasejbc -f ejbc.yaml
	For each bean the tool locates the compiled home interface, remote
	interface and implementation class below the destination directory,
	compares timestamps of any existing stubs and skeletons against them and
	against the descriptors, and calls the ejbc utility only for beans that
	are missing or out of date.

	The ejbc utility must be on the PATH, or below the bin directory of the
	iAS installation named by --ias-home.
*/
package documentation
