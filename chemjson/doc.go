//Package chemjson implements serialization and unserialization of
//chemdex molecules, with their 2D layout, as JSON. Its planned use is
//handing structures to programs (web front ends, plotting scripts) that
//can't read SMILES or compute a layout on their own.
package chemjson
