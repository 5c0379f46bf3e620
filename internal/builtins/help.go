package builtins

import "fmt"

const helpText = `shoe - an interactive command shell

usage: shoe [options]

options:
  -c, --command <cmd>   run <cmd> then exit
  -k <cmd>               run <cmd> and keep the shell open
      --no-history       don't load or save ~/.shoehistory
      --no-rc             don't execute ~/.shoerc on startup
  -h, --help              print this message and exit

builtins:
  ls [path]               list directory contents
  cd [path]                change the working directory
  pwd                      print the working directory
  echo [-n] [text]         print text, or pass stdin through
  cat [path]               print a file, or "meow" with no argument
  cp src dest              copy files matching a prefix*suffix pattern
  mv src dest               move files matching a prefix*suffix pattern
  rm pattern                remove files matching a prefix*suffix pattern
  mkdir path                create a directory, including parents
  cls                       clear the screen
  column                    arrange piped lines into columns
  copy                      copy stdin to the system clipboard
  theme [name]              list themes, or switch the active one
  which keyword             resolve an external command's path
  help                      print this message
  exit                      leave the shell
`

// help prints a static description of the shell's flags and builtins.
func help(ctx *Context, args []string) (Result, error) {
	fmt.Fprint(ctx.Stdout, helpText)
	return okResult, nil
}
