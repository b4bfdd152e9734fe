package editor

// DefaultScript seeds the editor when no file is given.
const DefaultScript = `#!/bin/bash

# Display a welcome message
echo "Welcome to the Bash script!"

# Prompt the user to enter a number
read -p "Please enter a number: " number

# Check if the number is even or odd
if (( number % 2 == 0 )); then
    echo "The number $number is even."
else
    echo "The number $number is odd."
fi

# Create a file and write to it
file="output.txt"
echo "This file was generated by the Bash script." > $file
echo "The entered number is $number." >> $file

# Read the file content and display it
echo "Content of the file $file:"
cat $file

# End of script
echo "Script finished."
`
